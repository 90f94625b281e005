package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger   *slog.Logger
	handlers *handlers
}

func New(logger *slog.Logger, session gameSession, stats statsService, prefs preferencesRepo) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		handlers: &handlers{
			logger:  logger.With("component", "rest"),
			session: session,
			stats:   stats,
			prefs:   prefs,
		},
	}
}

// Start serves until the context is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

func (that *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/ping", that.handlers.ping)

	r.Route("/api", func(r chi.Router) {
		r.Route("/game", func(r chi.Router) {
			r.Get("/", that.handlers.gameState)
			r.Post("/new", that.handlers.newGame)
			r.Post("/move", that.handlers.move)
			r.Post("/resume", that.handlers.resume)
		})

		r.Get("/stats", that.handlers.statistics)

		r.Get("/preferences", that.handlers.getPreferences)
		r.Put("/preferences", that.handlers.putPreferences)
	})

	return r
}
