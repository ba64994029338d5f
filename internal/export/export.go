// Package export produces the downloadable artifacts of a session: the PDF
// and the JSON envelope.
package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/jonathan/resume-builder/internal/envelope"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/storage"
)

// Format is an export kind.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// Filename suffixes, prefixed with the owner's name when known.
const (
	pdfSuffix  = "Resume.pdf"
	jsonSuffix = "Resume_Data.json"
)

// ErrExportInProgress is returned when an export is requested while another
// one is still running. The second request is ignored.
var ErrExportInProgress = errors.New("export already in progress")

// ExportError represents a failed export
type ExportError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s: %s", e.Format, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// Artifact is a finished export held in memory.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter runs exports one at a time.
type Exporter struct {
	engine pdf.Engine
	now    func() time.Time
	busy   atomic.Bool
}

// New creates an exporter that renders PDFs with engine.
func New(engine pdf.Engine) *Exporter {
	return &Exporter{engine: engine, now: time.Now}
}

// Busy reports whether an export is running.
func (x *Exporter) Busy() bool {
	return x.busy.Load()
}

// Render builds the artifact for format from a snapshot of s taken when the
// call starts. Edits made while it runs do not affect the result.
func (x *Exporter) Render(ctx context.Context, s *session.Session, format Format) (*Artifact, error) {
	if !x.busy.CompareAndSwap(false, true) {
		return nil, ErrExportInProgress
	}
	defer x.busy.Store(false)

	art, err := x.render(ctx, s.Snapshot(), format)
	if err != nil {
		log.Printf("[export] %v", err)
		return nil, err
	}
	return art, nil
}

func (x *Exporter) render(ctx context.Context, snap session.State, format Format) (art *Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			art = nil
			err = &ExportError{Format: format, Message: "renderer crashed", Cause: fmt.Errorf("%v", r)}
		}
	}()

	switch format {
	case FormatPDF:
		data, err := x.engine.Render(ctx, snap.Document, snap.Template, snap.Theme)
		if err != nil {
			return nil, &ExportError{Format: format, Message: "failed to render PDF", Cause: err}
		}
		return &Artifact{
			Filename:    envelope.Filename(snap.Document.Personal.FullName, pdfSuffix),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	case FormatJSON:
		env := envelope.Serialize(snap.Document, snap.Template, snap.Theme, x.now())
		data, err := envelope.Marshal(env)
		if err != nil {
			return nil, &ExportError{Format: format, Message: "failed to encode envelope", Cause: err}
		}
		return &Artifact{
			Filename:    envelope.Filename(snap.Document.Personal.FullName, jsonSuffix),
			ContentType: "application/json",
			Data:        data,
		}, nil
	default:
		return nil, &ExportError{Format: format, Message: "unknown export format"}
	}
}

// Write renders format and writes it into dir under its default filename.
// It returns the path written. A failed export leaves no file behind.
func (x *Exporter) Write(ctx context.Context, s *session.Session, format Format, dir string) (string, error) {
	art, err := x.Render(ctx, s, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &ExportError{Format: format, Message: "failed to create output directory", Cause: err}
	}
	path := filepath.Join(dir, art.Filename)
	if err := storage.WriteFileAtomic(path, art.Data, 0o644); err != nil {
		err = &ExportError{Format: format, Message: "failed to write file", Cause: err}
		log.Printf("[export] %v", err)
		return "", err
	}
	return path, nil
}

// PDF writes the PDF export into dir.
func (x *Exporter) PDF(ctx context.Context, s *session.Session, dir string) (string, error) {
	return x.Write(ctx, s, FormatPDF, dir)
}

// JSON writes the JSON envelope export into dir.
func (x *Exporter) JSON(ctx context.Context, s *session.Session, dir string) (string, error) {
	return x.Write(ctx, s, FormatJSON, dir)
}
