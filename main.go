package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmorgan81/creartproxy/internal/config"
	"github.com/dmorgan81/creartproxy/internal/inject"
	"github.com/dmorgan81/creartproxy/internal/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger := log.New(os.Stderr)
	ctx := log.NewContext(context.Background(), logger)

	injector := inject.Setup(ctx)
	defer func() { _ = injector.Shutdown() }()

	cfg := do.MustInvoke[*config.Config](injector)
	engine := do.MustInvoke[*gin.Engine](injector)

	srv := &http.Server{Addr: cfg.Addr, Handler: engine}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("listening", "addr", cfg.Addr, "upstream", cfg.UpstreamBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
