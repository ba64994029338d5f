// Package server provides the HTTP editor API for a resume session.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/session"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	session    *session.Session
	exporter   *export.Exporter
	events     *hub
}

// Config holds server configuration
type Config struct {
	Port int
}

// New creates a server editing sess. Exports go through exporter.
func New(cfg Config, sess *session.Session, exporter *export.Exporter) *Server {
	s := &Server{
		session:  sess,
		exporter: exporter,
		events:   newHub(),
	}
	sess.Subscribe(s.events)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /state", s.handleState)
	mux.HandleFunc("GET /events", s.handleEvents)

	// Document editing
	mux.HandleFunc("PUT /personal/{field}", s.handleSetPersonal)
	mux.HandleFunc("PUT /custom/title", s.handleSetCustomTitle)
	mux.HandleFunc("POST /skills", s.handleAddSkill)
	mux.HandleFunc("DELETE /skills/{skill}", s.handleRemoveSkill)
	mux.HandleFunc("POST /{kind}", s.handleAddEntry)
	mux.HandleFunc("PATCH /{kind}/{id}", s.handleUpdateEntry)
	mux.HandleFunc("DELETE /{kind}/{id}", s.handleRemoveEntry)
	mux.HandleFunc("DELETE /document", s.handleClear)

	// Presentation
	mux.HandleFunc("PUT /template/{name}", s.handleSelectTemplate)
	mux.HandleFunc("PUT /theme/{name}", s.handleSelectTheme)

	// Import and export
	mux.HandleFunc("POST /import", s.handleImport)
	mux.HandleFunc("GET /export/{format}", s.handleExport)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // browser PDF exports can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	s.events.close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
