package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/envelope"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/schemas"
)

// maxImportSize bounds the envelope accepted by POST /import.
const maxImportSize = 5 << 20

// ImportResponse reports the imported presentation and any schema
// problems. Problems never block an import.
type ImportResponse struct {
	StateResponse
	Warnings []schemas.FieldError `json:"warnings,omitempty"`
}

// handleImport replaces the session with an uploaded envelope
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(data) > maxImportSize {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "envelope is too large")
		return
	}

	var warnings []schemas.FieldError
	if err := schemas.ValidateEnvelope(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			warnings = validationErr.Errors
		} else {
			log.Printf("[import] schema check skipped: %v", err)
		}
	}

	doc, tpl, theme := envelope.Deserialize(data)
	s.session.Restore(doc, tpl, theme)

	snap := s.session.Snapshot()
	s.jsonResponse(w, http.StatusOK, ImportResponse{
		StateResponse: StateResponse{
			Data:       snap.Document,
			Template:   snap.Template,
			Theme:      snap.Theme,
			Completion: snap.Completion,
			Revision:   snap.Revision,
		},
		Warnings: warnings,
	})
}

// handleExport renders the PDF or JSON export and returns it as a download
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := export.Format(r.PathValue("format"))
	if format != export.FormatPDF && format != export.FormatJSON {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("unknown export format: %s", format))
		return
	}

	art, err := s.exporter.Render(r.Context(), s.session, format)
	if err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(art.Data); err != nil {
		log.Printf("[export] failed to send %s: %v", art.Filename, err)
	}
}
