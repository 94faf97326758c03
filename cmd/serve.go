package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/delivery"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio web server",
		Example: `  # Start on the port from $PORT (default 8080)
  portfolio serve

  # Store contact messages locally instead of mailing them
  DELIVERY_BACKEND=inbox portfolio serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides $PORT)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	// gin reads GIN_MODE in its own init, before .env has been loaded.
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	loader := assets.NewLoader(cfg.ImagesDir, "/images")
	if missing := loader.Check(site.Images()); len(missing) > 0 {
		slog.Warn("Some project images are missing", "count", len(missing))
	}

	tp, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			slog.Error("Tracer shutdown failed", "err", err)
		}
	}()

	sender, closeSender, err := newSender(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSender()

	store := session.NewStore(site, session.Options{
		SuccessDisplay:   cfg.SuccessDisplay,
		ContactPerMinute: cfg.ContactRate,
	})
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go store.Run(sweepCtx, cfg.SessionTTL, time.Minute)

	srv := server.New(server.Config{StaticDir: cfg.StaticDir, ImagesDir: cfg.ImagesDir}, site, store, loader, sender)

	addr := ":" + cfg.Port
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Portfolio available", "addr", addr, "url", "http://localhost"+addr, "delivery", cfg.Backend)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "err", err)
			return err
		}
		slog.Info("Server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}

// newSender builds the configured delivery backend wrapped with tracing.
func newSender(ctx context.Context, cfg *config.Config) (contact.Sender, func(), error) {
	switch cfg.Backend {
	case config.BackendInbox:
		inbox, err := delivery.OpenInbox(ctx, cfg.InboxPath)
		if err != nil {
			return nil, nil, err
		}
		closeInbox := func() {
			if err := inbox.Close(); err != nil {
				slog.Error("Closing inbox failed", "err", err)
			}
		}
		return delivery.NewTraced(inbox, config.BackendInbox), closeInbox, nil
	default:
		return delivery.NewTraced(delivery.NewSMTP(cfg.SMTP), config.BackendSMTP), func() {}, nil
	}
}
