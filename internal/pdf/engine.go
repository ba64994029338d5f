package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/resume-builder/internal/extract"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Engine names accepted by NewEngine.
const (
	EnginePaint   = "paint"
	EngineBrowser = "browser"
)

// Engine turns a resume into PDF bytes.
type Engine interface {
	Render(ctx context.Context, doc *types.Document, tpl types.Template, theme types.Theme) ([]byte, error)
}

// NewEngine returns the engine registered under name. chromePath and
// timeout only apply to the browser engine.
func NewEngine(name, chromePath string, timeout time.Duration) (Engine, error) {
	switch name {
	case "", EnginePaint:
		return PaintEngine{}, nil
	case EngineBrowser:
		return &BrowserRenderer{ExecPath: chromePath, Timeout: timeout}, nil
	default:
		return nil, fmt.Errorf("unknown PDF engine %q", name)
	}
}

// PaintEngine paints the resume with primitive drawing operations. When the
// styled layout fails it falls back to an unstyled text PDF.
type PaintEngine struct{}

// Render implements Engine.
func (PaintEngine) Render(ctx context.Context, doc *types.Document, tpl types.Template, theme types.Theme) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := rendering.BuildView(doc, tpl, theme)
	e := extract.FromView(view)

	var buf bytes.Buffer
	err := Write(&buf, e, view.Style)
	if err == nil {
		return buf.Bytes(), nil
	}

	log.Printf("[pdf] styled layout failed, falling back to plain text: %v", err)
	buf.Reset()
	if plainErr := WritePlain(&buf, e.Lines()); plainErr != nil {
		return nil, errors.Join(err, plainErr)
	}
	return buf.Bytes(), nil
}
