package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/water-quality-api/internal/adapter/csvsource"
	"github.com/couchcryptid/water-quality-api/internal/adapter/datamuse"
	"github.com/couchcryptid/water-quality-api/internal/adapter/httpadapter"
	"github.com/couchcryptid/water-quality-api/internal/adapter/wordnet"
	"github.com/couchcryptid/water-quality-api/internal/config"
	"github.com/couchcryptid/water-quality-api/internal/domain"
	"github.com/couchcryptid/water-quality-api/internal/observability"
	"github.com/couchcryptid/water-quality-api/internal/service"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// The dataset is loaded before the listener starts; without it there is
	// nothing to serve.
	records, err := csvsource.Load(cfg.DatasetPath, cfg.DatasetDelimiter)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}
	store := domain.NewStore(records)
	logger.Info("dataset loaded", "path", cfg.DatasetPath, "records", store.Len())

	lexicon, closeLexicon, err := openLexicon(cfg, logger)
	if err != nil {
		logger.Error("failed to open lexicon", "backend", cfg.LexiconBackend, "error", err)
		os.Exit(1)
	}
	defer closeLexicon()

	svc := service.New(store, lexicon, cfg.LexiconBackend, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := svc.CheckReadiness(ctx); err != nil {
		logger.Warn("lexicon not reachable, chatbot will report errors until it is", "error", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http server error", "error", err)
		closeLexicon()
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

// openLexicon builds the configured synonym backend and its cleanup func.
func openLexicon(cfg *config.Config, logger *slog.Logger) (domain.Lexicon, func(), error) {
	switch cfg.LexiconBackend {
	case config.LexiconDatamuse:
		logger.Info("datamuse lexicon enabled", "url", cfg.DatamuseURL, "timeout", cfg.LexiconTimeout)
		return datamuse.NewClient(cfg.DatamuseURL, cfg.LexiconTimeout, cfg.LexiconMaxResults, logger), func() {}, nil
	default:
		lex, err := wordnet.Open(cfg.LexiconPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("wordnet lexicon enabled", "path", cfg.LexiconPath)
		return lex, func() {
			if err := lex.Close(); err != nil {
				logger.Error("lexicon close error", "error", err)
			}
		}, nil
	}
}
