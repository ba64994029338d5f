package rendering

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// Color is an RGB colour.
type Color struct {
	R, G, B int
}

// Hex returns the colour as a CSS hex string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette holds the five theme colours.
type Palette struct {
	Primary   Color
	Secondary Color
	Text      Color
	Light     Color
	Accent    Color
}

var palettes = map[types.Theme]Palette{
	types.ThemeDarkBlue: {
		Primary:   Color{30, 58, 138},
		Secondary: Color{59, 130, 246},
		Text:      Color{31, 41, 55},
		Light:     Color{248, 250, 252},
		Accent:    Color{219, 234, 254},
	},
	types.ThemeEmerald: {
		Primary:   Color{5, 150, 105},
		Secondary: Color{16, 185, 129},
		Text:      Color{31, 41, 55},
		Light:     Color{240, 253, 244},
		Accent:    Color{209, 250, 229},
	},
	types.ThemePurple: {
		Primary:   Color{139, 92, 246},
		Secondary: Color{168, 85, 247},
		Text:      Color{31, 41, 55},
		Light:     Color{250, 245, 255},
		Accent:    Color{233, 213, 255},
	},
	types.ThemeRose: {
		Primary:   Color{244, 63, 94},
		Secondary: Color{251, 113, 133},
		Text:      Color{31, 41, 55},
		Light:     Color{255, 241, 242},
		Accent:    Color{254, 205, 211},
	},
	types.ThemeSlate: {
		Primary:   Color{71, 85, 105},
		Secondary: Color{100, 116, 139},
		Text:      Color{31, 41, 55},
		Light:     Color{248, 250, 252},
		Accent:    Color{226, 232, 240},
	},
}

// Font describes a template's typeface for both backends. PDF names are
// core PDF fonts, which need no embedding.
type Font struct {
	Name string // typeface the template is designed around
	CSS  string // CSS font-family stack
	PDF  string // core PDF font used when painting
}

var (
	humanistSans = Font{Name: "Inter", CSS: "'Inter', 'Segoe UI', Roboto, sans-serif", PDF: "Helvetica"}
	serif        = Font{Name: "Times", CSS: "'Times New Roman', Times, Georgia, serif", PDF: "Times"}
	grotesque    = Font{Name: "Helvetica", CSS: "Helvetica, Arial, sans-serif", PDF: "Helvetica"}
)

// Header is the header treatment of a template.
type Header int

// Header treatments.
const (
	HeaderPlain       Header = iota // no background
	HeaderBanner                    // full-width primary banner, white name
	HeaderLightBanner               // light banner, primary name
)

// Style is the resolved visual rule set for a template/theme pair.
type Style struct {
	Template types.Template
	Theme    types.Theme
	Palette  Palette
	Font     Font
	Header   Header
}

// Minimal reports whether the compact minimal rules apply.
func (s Style) Minimal() bool {
	return s.Template == types.TemplateMinimal
}

// StyleFor resolves the style for a template and theme. Unknown values
// resolve to the defaults.
func StyleFor(template types.Template, theme types.Theme) Style {
	if !template.Valid() {
		template = types.DefaultTemplate
	}
	if !theme.Valid() {
		theme = types.DefaultTheme
	}

	s := Style{
		Template: template,
		Theme:    theme,
		Palette:  palettes[theme],
		Font:     humanistSans,
		Header:   HeaderPlain,
	}
	switch template {
	case types.TemplateModern, types.TemplateCreative:
		s.Header = HeaderBanner
	case types.TemplateProfessional:
		s.Header = HeaderLightBanner
	case types.TemplateClassic:
		s.Font = serif
	case types.TemplateMinimal:
		s.Font = grotesque
	}
	return s
}
