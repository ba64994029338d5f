package rendering

import "fmt"

// Render stages reported by RenderError.
const (
	StageParse   = "parse"
	StageExecute = "execute"
)

// RenderError reports a failure to parse or execute one of the embedded
// HTML templates.
type RenderError struct {
	Stage    string
	Template string
	Cause    error
}

func (e *RenderError) Error() string {
	if e.Template == "" {
		return fmt.Sprintf("render error: %s templates: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("render error: %s %q: %v", e.Stage, e.Template, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
