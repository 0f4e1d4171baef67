package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-exercise-tracker/internal/adapters/auth/remote"
	"pet-exercise-tracker/internal/domain/users"
	"pet-exercise-tracker/internal/platform/logger"
	"pet-exercise-tracker/internal/router"

	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 10 * time.Second
	purgeInterval   = time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta la API HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svcs, repos, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Error("storage close failed", map[string]any{"error": err})
		}
	}()

	remoteClient, err := remote.NewClient(remote.Config{
		BaseURL: cfg.Auth.Remote.BaseURL,
		APIKey:  cfg.Auth.Remote.APIKey,
		Timeout: cfg.Auth.Remote.Timeout,
	})
	if err != nil {
		return err
	}
	if remoteClient != nil {
		log.Info("remote auth enabled", map[string]any{"base_url": cfg.Auth.Remote.BaseURL})
	}
	if cfg.Auth.DevMode {
		log.Warn("dev mode: X-Debug-User-ID is accepted without token", nil)
	}

	handler := router.NewRouter(router.Options{
		Logger:         log,
		Services:       svcs,
		RemoteVerifier: remote.NewVerifier(remoteClient),
		DevMode:        cfg.Auth.DevMode,
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go purgeSessions(ctx, svcs.Users, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr, "storage": cfg.Storage.Driver})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// purgeSessions borra sesiones vencidas cada purgeInterval hasta que ctx termine.
func purgeSessions(ctx context.Context, svc *users.Service, log logger.Logger) {
	t := time.NewTicker(purgeInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := svc.PurgeExpiredSessions(ctx)
			if err != nil {
				log.Warn("session purge failed", map[string]any{"error": err})
				continue
			}
			if n > 0 {
				log.Info("expired sessions purged", map[string]any{"count": n})
			}
		}
	}
}
