// Package server exposes the pipeline over HTTP: upload a video, read the
// detected window back, request a wall-clock range, download the clip.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/forPelevin/stampcut/internal/config"
	"github.com/forPelevin/stampcut/internal/usecase"
)

type Server struct {
	uc     usecase.Usecase
	store  *sessionStore
	logger zerolog.Logger

	listen         string
	workDir        string
	maxUploadBytes int64
	corsOrigins    []string
}

func New(uc usecase.Usecase, cfg *config.Config, logger zerolog.Logger) *Server {
	return &Server{
		uc:             uc,
		store:          newSessionStore(),
		logger:         logger,
		listen:         cfg.Listen,
		workDir:        cfg.WorkDir,
		maxUploadBytes: cfg.MaxUploadBytes,
		corsOrigins:    cfg.CORSOrigins,
	}
}

func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/videos", s.UploadVideo).Methods("POST")
	api.HandleFunc("/videos/{id}/clip", s.CreateClip).Methods("POST")
	api.HandleFunc("/videos/{id}/clip", s.GetClip).Methods("GET")
	api.HandleFunc("/videos/{id}", s.DeleteVideo).Methods("DELETE")

	r.HandleFunc("/health", s.HealthCheck).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.listen,
		Handler: s.Router(),
		// No write timeout: extraction blocks the handler for as long as
		// the transcoder runs.
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("listen", s.listen).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
