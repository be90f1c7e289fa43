package translate

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/joelkehle/patent-search/internal/patents"
)

const (
	DefaultModel      = string(anthropic.ModelClaudeSonnet4_20250514)
	DefaultTargetLang = "ru"

	// Translated fields are display strings, never full documents.
	maxTranslatedChars = 500
	callTimeout        = 15 * time.Second
)

const systemPrompt = "You are a technical translator for patent titles and abstracts. " +
	"Translate the user's text into the requested language. " +
	"Preserve technical terminology. Return the translation only, no commentary."

// Translator turns a text field into its translated form. The boolean is
// false whenever no translation is available; callers must treat that as a
// normal outcome, not an error.
type Translator interface {
	Translate(ctx context.Context, text string) (string, bool)
	TargetLang() string
}

// AnthropicMessager is the slice of the Anthropic client the translator
// needs; tests substitute a fake.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicTranslator struct {
	messages AnthropicMessager
	model    string
	target   string
}

type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

// Config carries the translator settings from the loaded service
// configuration. Zero values select the documented defaults.
type Config struct {
	APIKey     string
	Model      string
	TargetLang string
}

// New builds the best available translator: an Anthropic-backed one when an
// API key is configured, otherwise a no-op that leaves fields untranslated.
// Absence of the key is a supported configuration state.
func New(cfg Config) Translator {
	if cfg.TargetLang == "" {
		cfg.TargetLang = DefaultTargetLang
	}
	if cfg.APIKey == "" {
		return Noop{}
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &AnthropicTranslator{messages: newAnthropicClient(cfg.APIKey), model: cfg.Model, target: cfg.TargetLang}
}

func NewAnthropicTranslator(messages AnthropicMessager, model, target string) *AnthropicTranslator {
	return &AnthropicTranslator{messages: messages, model: model, target: target}
}

func (t *AnthropicTranslator) TargetLang() string { return t.target }

// Translate makes a single attempt and absorbs every failure. There is no
// retry: a failed field degrades to untranslated output, never to a missing
// record or a blocked response.
func (t *AnthropicTranslator) Translate(ctx context.Context, text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := t.messages.New(callCtx, anthropic.MessageNewParams{
		Model:     anthropic.Model(t.model),
		MaxTokens: 1024,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(fmt.Sprintf("Target language: %s\n\n%s", t.target, text))),
		},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		log.Printf("patent-search translate_failed target=%s err=%q", t.target, err.Error())
		return "", false
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", false
	}
	if len([]rune(out)) > maxTranslatedChars {
		out = patents.Clip(out, maxTranslatedChars)
	}
	return out, true
}

// Noop serves deployments without translation credentials.
type Noop struct{}

func (Noop) Translate(ctx context.Context, text string) (string, bool) { return "", false }
func (Noop) TargetLang() string                                        { return "" }
