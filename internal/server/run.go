package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Run serves HTTP on the configured address and blocks until ctx is done
// or the process receives SIGINT or SIGTERM, then shuts down gracefully.
//
// Returns nil on clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like Run but accepts connections on ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := s.newHTTPServer()

	scheduler, err := s.scheduler()
	if err != nil {
		_ = ln.Close()
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if scheduler != nil {
		scheduler.Start()
		s.logger.Info("reload scheduler started", slog.String("schedule", s.reloadSchedule))
	}

	g.Go(func() error {
		<-gctx.Done()

		s.logger.Info("shutting down server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer shutdownCancel()

		var errs []error
		if scheduler != nil {
			select {
			case <-scheduler.Stop().Done():
			case <-shutdownCtx.Done():
				errs = append(errs, fmt.Errorf("stopping reload scheduler: %w", shutdownCtx.Err()))
			}
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("shutdown completed with errors", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("shutdown completed")
	return nil
}

// scheduler builds the reload scheduler, or returns nil when reloads are
// disabled.
func (s *Server) scheduler() (*cron.Cron, error) {
	if s.reloadSchedule == "" {
		return nil, nil
	}
	c := cron.New()
	if _, err := c.AddFunc(s.reloadSchedule, s.Reload); err != nil {
		return nil, fmt.Errorf("server: invalid reload schedule %q: %w", s.reloadSchedule, err)
	}
	return c, nil
}

// Reload refreshes the loaded translations from the active folder in place.
// The active locale is kept as it is.
func (s *Server) Reload() {
	folder := s.svc.Resolution().Folder
	if err := s.svc.Refresh(); err != nil {
		s.logger.Warn("scheduled reload failed",
			slog.String("folder", folder),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.Debug("translations reloaded", slog.String("folder", folder))
}
