package rendering

import (
	"fmt"
	"html/template"
	"strings"
)

// Stylesheet builds the CSS for a style. The template decides the layout
// rules, the theme only supplies colours.
func Stylesheet(s Style) template.CSS {
	p := s.Palette
	var sb strings.Builder

	fmt.Fprintf(&sb, `
:root { --primary: %s; --secondary: %s; --text: %s; --light: %s; --accent: %s; }
body { margin: 0; background: #e5e7eb; }
.resume-preview { font-family: %s; color: var(--text); background: #fff; width: 210mm; min-height: 297mm; margin: 0 auto; box-sizing: border-box; }
.resume-header { text-align: center; padding: 20mm 20mm 6mm; }
.resume-header h1 { margin: 0 0 4mm; font-size: 24pt; color: var(--primary); }
.contact-info { color: #646464; font-size: 10pt; }
.contact-info span + span::before { content: " \2022  "; }
.contact-info a { color: inherit; text-decoration: none; }
.resume-content { padding: 0 20mm 20mm; border-top: 0.5mm solid var(--primary); }
.resume-section h2 { font-size: 14pt; color: var(--primary); margin: 8mm 0 3mm; }
.resume-item { margin-bottom: 4mm; }
.resume-item h3 { font-size: 10pt; margin: 0; }
.item-meta { font-style: italic; color: #646464; font-size: 10pt; }
.item-description { font-size: 10pt; color: #000; }
.item-description ul { margin: 0; padding-left: 5mm; }
.resume-summary p { white-space: pre-line; font-size: 10pt; }
.resume-skill { display: inline-block; background: var(--accent); color: var(--primary); border-radius: 3mm; padding: 0.5mm 3mm; margin: 0 1.5mm 1.5mm 0; font-size: 9pt; }
.language-item { display: flex; justify-content: space-between; font-size: 10pt; }
.language-level { color: var(--secondary); }
.project-links a { color: var(--secondary); margin-right: 4mm; font-size: 9pt; }
.empty-state { text-align: center; color: #9ca3af; padding: 40mm 20mm; }
`, p.Primary.Hex(), p.Secondary.Hex(), p.Text.Hex(), p.Light.Hex(), p.Accent.Hex(), s.Font.CSS)

	switch s.Header {
	case HeaderBanner:
		sb.WriteString(`
.resume-header { background: var(--primary); color: #fff; padding-top: 10mm; }
.resume-header h1 { color: #fff; }
.resume-header .contact-info { color: #f3f4f6; }
.resume-content { border-top: none; padding-top: 5mm; }
`)
	case HeaderLightBanner:
		sb.WriteString(`
.resume-header { background: var(--light); padding-top: 10mm; }
`)
	}

	if s.Minimal() {
		sb.WriteString(`
.resume-header h1 { font-size: 20pt; }
.resume-content { border-top-width: 1mm; }
.resume-section h2 { font-size: 12pt; text-decoration: underline; margin-top: 6mm; }
.resume-item h3, .item-meta, .item-description { font-size: 9pt; }
`)
	}

	//nolint:gosec // built only from constant rules and the fixed palette table
	return template.CSS(sb.String())
}
