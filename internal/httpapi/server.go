// Package httpapi exposes the estimator as a JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/huangsam/shsat/internal/contract"
)

// Server timeouts.
const (
	requestTimeout    = 30 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// NewRouter builds the chi router with middleware and all API routes.
func NewRouter(cfg *contract.Config, mgr contract.HistoryManager) http.Handler {
	h := &handler{cfg: cfg, mgr: mgr}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	r.Get("/healthz", h.healthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/estimate", h.getEstimate)
		r.Post("/estimate", h.postEstimate)
		r.Get("/schools", h.listSchools)
		r.Get("/schools/{name}", h.getSchool)
		r.Get("/curve", h.getCurve)
	})
	return r
}

// corsOptions allows any origin unless specific origins are configured.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}
	if len(origins) > 0 {
		opts.AllowedOrigins = origins
		opts.AllowCredentials = true
	}
	return opts
}

// Serve runs the HTTP API on the configured address until the context is cancelled.
func Serve(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg, mgr),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("SHSAT estimator listening on %s", cfg.Addr)
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Printf("Shutting down SHSAT estimator")
		return s.Shutdown(shutdownCtx)
	}
}
