package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ganttlabs/ganttlog/internal/logger"
	"github.com/ganttlabs/ganttlog/internal/server"
)

// sessionSweepInterval is how often expired sessions are purged while serving.
const sessionSweepInterval = time.Hour

type ServeCmd struct{}

func (c *ServeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	srv, err := server.NewServer(ctx.Store, ctx.Config)
	if err != nil {
		return err
	}

	sweepDone := make(chan struct{})
	go c.sweepSessions(ctx, sweepDone)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		close(sweepDone)
		return err
	case s := <-sig:
		logger.Info("received signal, shutting down", "signal", s)
	}
	close(sweepDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ctx.Config.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// sweepSessions periodically deletes expired sessions until done closes.
func (c *ServeCmd) sweepSessions(ctx *Context, done <-chan struct{}) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			n, err := ctx.Store.DeleteExpiredSessions(time.Now())
			if err != nil {
				logger.Warn("session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("purged expired sessions", "count", n)
			}
		}
	}
}
