package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"riftdraft/internal/config"
	"riftdraft/internal/httpapi"
	"riftdraft/internal/hub"
	"riftdraft/internal/roster"
	"riftdraft/internal/session"
	"riftdraft/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sink session.ResultSink
	var archive httpapi.ResultArchive
	if cfg.DatabaseURL != "" {
		st, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("store open failed", zap.Error(err))
		}
		sink = st
		archive = st
		logger.Info("result store enabled")
	} else {
		logger.Info("no DATABASE_URL set, results are not persisted")
	}

	h := hub.NewHub(ctx, hub.Deps{Sink: sink, Logger: logger})
	api := httpapi.New(h, cfg.PublicBaseURL, cfg.TurnSeconds, archive, roster.DefaultCatalog(), logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Routes(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		h.Inbox() <- hub.ShutdownHub{}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
