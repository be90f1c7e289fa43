package translate

import (
	"context"
	"errors"
	"strings"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type fakeMessager struct {
	calls int
	text  string
	err   error
}

func (f *fakeMessager) New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.Message{Content: []anthropic.ContentBlockUnion{{Type: "text", Text: f.text}}}, nil
}

func TestTranslateSuccess(t *testing.T) {
	fake := &fakeMessager{text: "  Солнечная опреснительная установка  "}
	tr := NewAnthropicTranslator(fake, DefaultModel, "ru")
	got, ok := tr.Translate(context.Background(), "Solar desalination system")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "Солнечная опреснительная установка" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateFailureIsAbsence(t *testing.T) {
	fake := &fakeMessager{err: errors.New("status code: 529 overloaded")}
	tr := NewAnthropicTranslator(fake, DefaultModel, "ru")
	if got, ok := tr.Translate(context.Background(), "anything"); ok || got != "" {
		t.Fatalf("expected absence, got %q ok=%v", got, ok)
	}
	if fake.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", fake.calls)
	}
}

func TestTranslateEmptyInputNoCall(t *testing.T) {
	fake := &fakeMessager{text: "unused"}
	tr := NewAnthropicTranslator(fake, DefaultModel, "ru")
	if _, ok := tr.Translate(context.Background(), "   "); ok {
		t.Fatal("expected absence for empty input")
	}
	if fake.calls != 0 {
		t.Fatalf("expected no API call for empty input, got %d", fake.calls)
	}
}

func TestTranslateEmptyResponseIsAbsence(t *testing.T) {
	fake := &fakeMessager{text: "   "}
	tr := NewAnthropicTranslator(fake, DefaultModel, "ru")
	if _, ok := tr.Translate(context.Background(), "text"); ok {
		t.Fatal("expected absence for empty response")
	}
}

func TestTranslateClipsLongOutput(t *testing.T) {
	fake := &fakeMessager{text: strings.Repeat("перевод слова ", 60)}
	tr := NewAnthropicTranslator(fake, DefaultModel, "ru")
	got, ok := tr.Translate(context.Background(), "long input")
	if !ok {
		t.Fatal("expected ok")
	}
	if n := len([]rune(got)); n > 500 {
		t.Fatalf("translated text length %d exceeds 500", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected truncation marker, got %q", got[len(got)-10:])
	}
}

func TestNewWithoutKeyIsNoop(t *testing.T) {
	if _, ok := New(Config{TargetLang: "de"}).(Noop); !ok {
		t.Fatal("expected noop translator without an API key")
	}
}

func TestNewThreadsConfiguredValues(t *testing.T) {
	fake := &fakeMessager{text: "unused"}
	orig := newAnthropicClient
	newAnthropicClient = func(apiKey string) AnthropicMessager {
		if apiKey != "sk-test" {
			t.Fatalf("api key %q", apiKey)
		}
		return fake
	}
	defer func() { newAnthropicClient = orig }()

	tr := New(Config{APIKey: "sk-test", Model: "claude-test", TargetLang: "de"})
	at, ok := tr.(*AnthropicTranslator)
	if !ok {
		t.Fatalf("expected AnthropicTranslator, got %T", tr)
	}
	if at.TargetLang() != "de" || at.model != "claude-test" {
		t.Fatalf("target=%q model=%q", at.TargetLang(), at.model)
	}

	// Zero values select the defaults rather than empty settings.
	at = New(Config{APIKey: "sk-test"}).(*AnthropicTranslator)
	if at.TargetLang() != DefaultTargetLang || at.model != DefaultModel {
		t.Fatalf("defaults not applied: target=%q model=%q", at.TargetLang(), at.model)
	}
}

func TestNoopTranslator(t *testing.T) {
	if _, ok := (Noop{}).Translate(context.Background(), "text"); ok {
		t.Fatal("noop translator must report absence")
	}
}
