// Package session holds the editing state of one resume: the document, the
// selected template and theme, and the derived completion and preview.
//
// Every mutation runs under one lock and, before returning, recomputes the
// completion percentage, re-renders the preview and notifies observers, in
// that order. Readers therefore never see a preview that is older or newer
// than the completion value next to it.
package session

import (
	"log"
	"sync"

	"github.com/jonathan/resume-builder/internal/completion"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Observer is notified after every committed mutation. Observers run under
// the session lock and must not call back into the session.
type Observer interface {
	OnCompletion(percent int)
	OnPreview(html string)
}

// State is a consistent copy of the session taken at one instant.
type State struct {
	Document   *types.Document
	Template   types.Template
	Theme      types.Theme
	Completion int
	Revision   uint64
}

// Session is the single owner of a resume being edited. It is safe for
// concurrent use.
type Session struct {
	mu         sync.Mutex
	doc        *types.Document
	template   types.Template
	theme      types.Theme
	completion int
	preview    string
	revision   uint64
	observers  []Observer
}

// New creates a session with an empty document and the default template
// and theme.
func New() *Session {
	s := &Session{
		doc:      types.NewDocument(),
		template: types.DefaultTemplate,
		theme:    types.DefaultTheme,
	}
	s.refreshLocked()
	return s
}

// Subscribe registers an observer for future mutations.
func (s *Session) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Completion returns the completion percentage of the current document.
func (s *Session) Completion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completion
}

// Preview returns the rendered HTML fragment of the current document.
func (s *Session) Preview() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// Template returns the selected template.
func (s *Session) Template() types.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// Theme returns the selected theme.
func (s *Session) Theme() types.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Revision counts committed mutations. It changes whenever the state does.
func (s *Session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Snapshot returns a deep copy of the current state, so callers can work
// on it while editing continues.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Document:   s.doc.Clone(),
		Template:   s.template,
		Theme:      s.theme,
		Completion: s.completion,
		Revision:   s.revision,
	}
}

// SelectTemplate switches the template. Unknown names select the default.
func (s *Session) SelectTemplate(name string) {
	s.mutate(func() { s.template = types.ParseTemplate(name) })
}

// SelectTheme switches the theme. Unknown names select the default.
func (s *Session) SelectTheme(name string) {
	s.mutate(func() { s.theme = types.ParseTheme(name) })
}

// Clear resets the document to empty. The template and theme are kept.
func (s *Session) Clear() {
	s.mutate(func() { s.doc = types.NewDocument() })
}

// Restore replaces the whole state, for example with a stored or imported
// resume. The document is copied and normalized.
func (s *Session) Restore(doc *types.Document, template types.Template, theme types.Theme) {
	if doc == nil {
		doc = types.NewDocument()
	} else {
		doc = doc.Clone()
	}
	doc.Normalize()

	s.mutate(func() {
		s.doc = doc
		s.template = types.ParseTemplate(string(template))
		s.theme = types.ParseTheme(string(theme))
	})
}

// SetPersonalField sets a personal field. Any value is accepted; an empty
// one clears the field.
func (s *Session) SetPersonalField(field types.PersonalField, value string) {
	s.mutate(func() { field.Set(&s.doc.Personal, value) })
}

// SetCustomSectionTitle sets the custom section title.
func (s *Session) SetCustomSectionTitle(value string) {
	s.mutate(func() { s.doc.CustomSection.Title = value })
}

// mutate applies fn and commits the result.
func (s *Session) mutate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.revision++
	s.refreshLocked()
}

// refreshLocked recomputes the derived values and notifies observers.
func (s *Session) refreshLocked() {
	s.completion = completion.Percent(s.doc)

	html, err := rendering.RenderHTML(s.doc, s.template, s.theme)
	if err != nil {
		// keep the last good preview
		log.Printf("[session] preview render failed: %v", err)
	} else {
		s.preview = html
	}

	for _, o := range s.observers {
		o.OnCompletion(s.completion)
		o.OnPreview(s.preview)
	}
}
