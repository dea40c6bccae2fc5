package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	api "github.com/mind-engage/kwash-dashboard/internal/api/http"
	"github.com/mind-engage/kwash-dashboard/internal/storage"
)

func newServeCmd(a *app) *cobra.Command {
	var addr, assets string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Long: `Loads the catalog once and serves the dashboard pages, JSON API, chart
images and static assets until SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
	}
	applyCatalog := catalogFlags(cmd, a)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from HTTP_ADDR)")
	cmd.Flags().StringVar(&assets, "assets", "", "asset directory (default from ASSET_DIR)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		applyCatalog()
		if addr != "" {
			a.cfg.HTTPAddr = addr
		}
		if assets != "" {
			a.cfg.AssetDir = assets
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return a.serve(ctx)
	}
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	cat, conn, err := a.loadCatalog(loadCtx)
	cancel()
	if err != nil {
		return err
	}
	defer closeDB(conn)

	as, err := storage.NewFSStore(a.cfg.AssetDir, "/assets")
	if err != nil {
		return err
	}

	var ready func(context.Context) error
	if conn != nil {
		ready = conn.PingContext
	}
	router, err := api.NewRouter(api.Options{
		Catalog:     cat,
		Assets:      as,
		Logger:      a.log,
		CORSOrigins: a.cfg.CORSOrigins(),
		Ready:       ready,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("listening", zap.String("addr", srv.Addr), zap.String("mode", string(a.cfg.Mode)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down", zap.Duration("timeout", a.cfg.ShutdownTimeout))
		sctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
