package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/goliatone/go-formly/pkg/formly"
	"github.com/goliatone/go-formly/pkg/render/template/pongo"
	"github.com/goliatone/go-formly/pkg/sanitize"
)

func main() {
	var (
		addrFlag      = flag.String("addr", ":8484", "HTTP listen address")
		configFlag    = flag.String("config", "", "formly config file (YAML)")
		templatesFlag = flag.String("templates", "", "directory holding chrome templates (optional)")
		inlineFlag    = flag.Bool("inline-errors", true, "show the first validation message next to each field")
		shutdownGrace = flag.Duration("grace", 5*time.Second, "Shutdown grace period")
	)
	flag.Parse()

	cfg := formly.DefaultConfig()
	if *configFlag != "" {
		loaded, err := formly.LoadConfigFS(os.DirFS(filepath.Dir(*configFlag)), filepath.Base(*configFlag))
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}
	cfg.DisplayInlineErrors = *inlineFlag

	options := []formly.Option{
		formly.WithConfig(cfg),
		formly.WithMessageFilter(sanitize.Message),
	}
	if *templatesFlag != "" {
		engine, err := pongo.New(pongo.WithBaseDir(*templatesFlag))
		if err != nil {
			log.Fatalf("templates: %v", err)
		}
		options = append(options, formly.WithChromeTemplates(engine))
	}

	srv, err := newServer(formly.New(options...))
	if err != nil {
		log.Fatalf("signup form: %v", err)
	}

	httpServer := &http.Server{
		Addr:              *addrFlag,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", *addrFlag)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
