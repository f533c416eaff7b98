package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/runsha/sketchfolio/logging"
	"github.com/runsha/sketchfolio/web/assets"
	"github.com/runsha/sketchfolio/web/routes"
)

const shutdownTimeout = 30 * time.Second

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging tags the request context with a request id and logs the outcome.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, id := logging.RequestCtx(r.Context())

		w.Header().Set("X-Request-Id", id)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r.WithContext(ctx))

		slog.InfoContext(ctx, "Handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start))
	})
}

// BuildServer wires the page and its assets.
func BuildServer(handler *routes.ServerHandler, dev bool) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /assets/",
		disableCacheInDevMode(dev,
			http.StripPrefix("/assets",
				http.FileServerFS(assets.FS))))
	mux.Handle("GET /{$}", disableCacheInDevMode(dev, http.HandlerFunc(handler.PageHandle)))

	return withLogging(mux)
}

// StartServer serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func StartServer(ctx context.Context, port int, handler *routes.ServerHandler, dev bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           BuildServer(handler, dev),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("Running interface", "port", port, "dev", dev)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("could not run server: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("Server stopped")

	return nil
}
