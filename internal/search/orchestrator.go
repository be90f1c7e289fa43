// Package search decides between the live upstream path and the demo
// fallback, and applies sorting, translation, and pagination uniformly to
// whichever set wins.
package search

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joelkehle/patent-search/internal/patents"
	"github.com/joelkehle/patent-search/internal/translate"
)

// Upstream is the slice of the OPS client the orchestrator needs; tests
// substitute fakes.
type Upstream interface {
	Configured() bool
	Token(ctx context.Context) (string, bool)
	Search(ctx context.Context, token, query string, start, end int) ([]byte, error)
}

// Parser converts an upstream response body into records plus a total.
type Parser func(blob []byte, abstractLimit int) ([]patents.PatentRecord, int)

type Orchestrator struct {
	upstream   Upstream
	parse      Parser
	translator translate.Translator
	poolSize   int
	tracer     trace.Tracer
}

func New(upstream Upstream, parse Parser, translator translate.Translator) *Orchestrator {
	return &Orchestrator{
		upstream:   upstream,
		parse:      parse,
		translator: translator,
		poolSize:   patents.DemoPoolSize,
		tracer:     otel.Tracer("patent-search/orchestrator"),
	}
}

// Mode reports the steady-state operating mode for the status endpoint.
func (o *Orchestrator) Mode() string {
	if o.upstream.Configured() {
		return "ops"
	}
	return "demo"
}

// Search serves one request window. It never fails: any upstream problem
// degrades to the deterministic demo pool, and translation failures degrade
// to untranslated fields. The response is always a well-formed page.
func (o *Orchestrator) Search(ctx context.Context, query string, page, size int) patents.SearchResult {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > patents.MaxPageSize {
		size = patents.MaxPageSize
	}

	ctx, span := o.tracer.Start(ctx, "search",
		trace.WithAttributes(attribute.Int("search.page", page), attribute.Int("search.size", size)))
	defer span.End()

	items, total, live := o.liveWindow(ctx, query, page, size)
	if !live {
		items, total = o.demoWindow(page, size)
	}
	span.SetAttributes(attribute.Bool("search.live", live), attribute.Int("search.total", total))

	o.translateAll(ctx, items)

	result := patents.SearchResult{
		Total: total,
		Page:  page,
		Size:  size,
		Items: items,
	}
	if (page-1)*size+len(items) < total {
		next := page + 1
		result.NextPage = &next
	}
	return result
}

// liveWindow runs the token exchange, upstream search, and parse for the
// requested window. Any failure routes to fallback; live and demo results
// are never mixed in one response.
func (o *Orchestrator) liveWindow(ctx context.Context, query string, page, size int) ([]patents.PatentRecord, int, bool) {
	token, ok := o.upstream.Token(ctx)
	if !ok {
		return nil, 0, false
	}

	ctx, span := o.tracer.Start(ctx, "search.upstream")
	defer span.End()

	start := (page-1)*size + 1
	end := page * size
	blob, err := o.upstream.Search(ctx, token, query, start, end)
	if err != nil {
		log.Printf("patent-search upstream_failed range=%d-%d err=%q", start, end, err.Error())
		return nil, 0, false
	}
	records, total := o.parse(blob, patents.AbstractClipFull)
	if total == 0 {
		log.Printf("patent-search upstream_empty range=%d-%d body_len=%d", start, end, len(blob))
		return nil, 0, false
	}
	if len(records) > size {
		records = records[:size]
	}
	return records, total, true
}

// demoWindow paginates the deterministic fallback pool locally.
func (o *Orchestrator) demoWindow(page, size int) ([]patents.PatentRecord, int) {
	pool := patents.DemoPool(o.poolSize)
	start := (page - 1) * size
	if start >= len(pool) {
		return []patents.PatentRecord{}, len(pool)
	}
	end := start + size
	if end > len(pool) {
		end = len(pool)
	}
	return pool[start:end], len(pool)
}

// translateAll fills the translated title/abstract fields in place. It runs
// after the live/fallback decision so both paths are treated the same, and
// a failed field simply stays untranslated.
func (o *Orchestrator) translateAll(ctx context.Context, items []patents.PatentRecord) {
	if len(items) == 0 {
		return
	}
	ctx, span := o.tracer.Start(ctx, "search.translate",
		trace.WithAttributes(attribute.Int("search.items", len(items))))
	defer span.End()

	for i := range items {
		if t, ok := o.translator.Translate(ctx, items[i].TitleOriginal); ok {
			items[i].TitleTranslated = t
		}
		if items[i].AbstractOriginal == "" {
			continue
		}
		if t, ok := o.translator.Translate(ctx, items[i].AbstractOriginal); ok {
			items[i].AbstractTranslated = t
		}
	}
}
