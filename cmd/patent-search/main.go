package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joelkehle/patent-search/internal/config"
	"github.com/joelkehle/patent-search/internal/httpapi"
	"github.com/joelkehle/patent-search/internal/ops"
	"github.com/joelkehle/patent-search/internal/otelx"
	"github.com/joelkehle/patent-search/internal/report"
	"github.com/joelkehle/patent-search/internal/search"
	"github.com/joelkehle/patent-search/internal/translate"
)

const version = "1.3.0"

func main() {
	addr := flag.String("addr", "", "Listen address (overrides ADDR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdown, err := otelx.Init(ctx, otelx.ConfigFromEnv(httpapi.ServiceName, version))
	if err != nil {
		log.Printf("warning: tracing init failed, continuing without: %v", err)
		shutdown = func(context.Context) error { return nil }
	}

	upstream := ops.NewClient(ops.Config{
		Key:     cfg.OPSKey,
		Secret:  cfg.OPSSecret,
		BaseURL: cfg.OPSBaseURL,
	})
	translator := translate.New(translate.Config{
		APIKey:     cfg.AnthropicKey,
		Model:      cfg.TranslateModel,
		TargetLang: cfg.TranslateLang,
	})
	orch := search.New(upstream, ops.ParseSearchResponse, translator)
	handler := httpapi.NewServer(orch, report.NewRenderer(), version)

	log.Printf("patent-search listening on %s (mode=%s)", cfg.Addr, orch.Mode())
	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	_ = shutdown(context.Background())
}
