package types

import "strings"

// Template is a named layout variant of the resume.
type Template string

// Supported templates.
const (
	TemplateModern       Template = "modern"
	TemplateClassic      Template = "classic"
	TemplateCreative     Template = "creative"
	TemplateProfessional Template = "professional"
	TemplateMinimal      Template = "minimal"
)

// DefaultTemplate is used whenever a template name is missing or unknown.
const DefaultTemplate = TemplateModern

// Templates lists every supported template in display order.
var Templates = []Template{TemplateModern, TemplateClassic, TemplateCreative, TemplateProfessional, TemplateMinimal}

// ParseTemplate maps a name to a template, falling back to DefaultTemplate.
func ParseTemplate(name string) Template {
	t := Template(strings.ToLower(strings.TrimSpace(name)))
	if t.Valid() {
		return t
	}
	return DefaultTemplate
}

// Valid reports whether t is one of the supported templates.
func (t Template) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateCreative, TemplateProfessional, TemplateMinimal:
		return true
	}
	return false
}

// Theme is a named colour palette, independent of the template.
type Theme string

// Supported themes.
const (
	ThemeDarkBlue Theme = "dark-blue"
	ThemeEmerald  Theme = "emerald"
	ThemePurple   Theme = "purple"
	ThemeRose     Theme = "rose"
	ThemeSlate    Theme = "slate"
)

// DefaultTheme is used whenever a theme name is missing or unknown.
const DefaultTheme = ThemeDarkBlue

// Themes lists every supported theme in display order.
var Themes = []Theme{ThemeDarkBlue, ThemeEmerald, ThemePurple, ThemeRose, ThemeSlate}

// ParseTheme maps a name to a theme, falling back to DefaultTheme.
func ParseTheme(name string) Theme {
	t := Theme(strings.ToLower(strings.TrimSpace(name)))
	if t.Valid() {
		return t
	}
	return DefaultTheme
}

// Valid reports whether t is one of the supported themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeDarkBlue, ThemeEmerald, ThemePurple, ThemeRose, ThemeSlate:
		return true
	}
	return false
}

// Proficiency is a language skill level.
type Proficiency string

// Proficiency levels, lowest first.
const (
	Beginner     Proficiency = "beginner"
	Intermediate Proficiency = "intermediate"
	Advanced     Proficiency = "advanced"
	Fluent       Proficiency = "fluent"
	Native       Proficiency = "native"
)

// ParseProficiency returns the level for name and whether it was recognised.
func ParseProficiency(name string) (Proficiency, bool) {
	p := Proficiency(strings.ToLower(strings.TrimSpace(name)))
	return p, p.Valid()
}

// Valid reports whether p is a known level.
func (p Proficiency) Valid() bool {
	switch p {
	case Beginner, Intermediate, Advanced, Fluent, Native:
		return true
	}
	return false
}

// Label returns the level with its first letter capitalised ("Fluent").
func (p Proficiency) Label() string {
	if p == "" {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}
