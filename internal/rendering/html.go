// Package rendering turns resume documents into their visual form: the
// normalized View tree, the HTML preview and the shared style table.
package rendering

import (
	"embed"
	"html/template"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var (
	parseOnce   sync.Once
	parsed      *template.Template
	errParseTpl error
)

// pageData is passed to the standalone page template.
type pageData struct {
	View View
	CSS  template.CSS
}

// RenderHTML renders the resume fragment for a document. It is pure: the
// same document, template and theme always give the same markup.
func RenderHTML(doc *types.Document, tpl types.Template, theme types.Theme) (string, error) {
	return RenderView(BuildView(doc, tpl, theme))
}

// RenderView renders an already built view as a resume fragment.
func RenderView(v View) (string, error) {
	return execute("resume", v)
}

// RenderPage renders a complete HTML page, stylesheet included, suitable for
// a browser preview or for printing.
func RenderPage(doc *types.Document, tpl types.Template, theme types.Theme) (string, error) {
	v := BuildView(doc, tpl, theme)
	return execute("page", pageData{View: v, CSS: Stylesheet(v.Style)})
}

func execute(name string, data any) (string, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.ExecuteTemplate(&result, name, data); err != nil {
		return "", &RenderError{Stage: StageExecute, Template: name, Cause: err}
	}
	return result.String(), nil
}

// parseTemplates parses the embedded templates once.
func parseTemplates() (*template.Template, error) {
	parseOnce.Do(func() {
		tmpl, err := template.New("resume.html.tmpl").ParseFS(templateFiles, "templates/*.tmpl")
		if err != nil {
			errParseTpl = &RenderError{Stage: StageParse, Cause: err}
			return
		}
		parsed = tmpl
	})
	return parsed, errParseTpl
}
