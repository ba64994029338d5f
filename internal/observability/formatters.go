// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/extract"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the number of cells in the completion bar
	barWidth = 30
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// Bar renders a completion percentage as a fixed-width bar.
func Bar(percent int) string {
	percent = max(0, min(100, percent))
	filled := percent * barWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// PrintProgress outputs the completion estimate and how many entries each
// collection holds.
func (p *Printer) PrintProgress(doc *types.Document, tpl types.Template, theme types.Theme, percent int) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	name := doc.Personal.FullName
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
	sb.WriteString(fmt.Sprintf("Template:  %s\n", tpl))
	sb.WriteString(fmt.Sprintf("Theme:     %s\n", theme))
	sb.WriteString(fmt.Sprintf("Complete:  %s %d%%\n", Bar(percent), percent))
	sb.WriteString("\n")

	counts := []struct {
		label string
		n     int
	}{
		{"Experience", len(doc.Experience)},
		{"Education", len(doc.Education)},
		{"Skills", len(doc.Skills)},
		{"Projects", len(doc.Projects)},
		{"Certifications", len(doc.Certifications)},
		{"Languages", len(doc.Languages)},
		{"Awards", len(doc.Awards)},
		{"References", len(doc.References)},
		{"Custom items", len(doc.CustomSection.Items)},
	}
	for _, c := range counts {
		sb.WriteString(fmt.Sprintf("  %-16s %d\n", c.label, c.n))
	}

	p.printBox("RESUME PROGRESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutline outputs the section titles of an extracted resume with the
// first few item titles of each.
func (p *Printer) PrintOutline(e extract.Extracted) {
	if len(e.Sections) == 0 && e.Name == "" {
		p.printBox("RESUME OUTLINE", "Nothing to render yet")
		return
	}

	var sb strings.Builder
	if e.Name != "" {
		sb.WriteString(e.Name + "\n")
	}
	if e.Summary != "" {
		sb.WriteString("  Summary\n")
	}
	for _, s := range e.Sections {
		sb.WriteString(fmt.Sprintf("• %s (%d)\n", s.Title, len(s.Items)))
		count := min(len(s.Items), maxItemsToShow)
		for i := 0; i < count; i++ {
			label := s.Items[i].Title
			if label == "" {
				label = s.Items[i].Text
			}
			if label != "" {
				sb.WriteString(fmt.Sprintf("    - %s\n", label))
			}
		}
		if len(s.Items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("    ... and %d more\n", len(s.Items)-maxItemsToShow))
		}
	}

	p.printBox("RESUME OUTLINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExport reports a finished export.
func (p *Printer) PrintExport(format, path string, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format:  %s\n", strings.ToUpper(format)))
	sb.WriteString(fmt.Sprintf("File:    %s\n", path))
	sb.WriteString(fmt.Sprintf("Size:    %s", humanBytes(size)))
	p.printBox("✅ EXPORT COMPLETE", sb.String())
}

// PrintValidation outputs schema validation problems.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(errs []schemas.FieldError) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ENVELOPE IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(errs)))
	for i, fe := range errs {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s", fe.Message))
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", sb.String())
}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
