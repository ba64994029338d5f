package rendering

import (
	"html/template"
	"strings"
	"time"
)

// monthLayouts are the accepted date input layouts, most specific last.
var monthLayouts = []string{"2006-01", "2006-01-02"}

// FormatDate renders a year-month value ("2020-01") as "Jan 2020". Empty
// input gives an empty string; input that is not a date is returned as is.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return collapseSpace(value)
}

// DateRange formats a start/end pair. Nothing is shown without a start date;
// current entries end in "Present" and a missing end shows the start alone.
func DateRange(start, end string, current bool) string {
	if strings.TrimSpace(start) == "" {
		return ""
	}
	endLabel := FormatDate(end)
	if current {
		endLabel = "Present"
	}
	if endLabel == "" {
		return FormatDate(start)
	}
	return FormatDate(start) + " - " + endLabel
}

// joinNonEmpty joins the non-blank parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// prefixed returns prefix+value, or "" when value is blank.
func prefixed(prefix, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return prefix + strings.TrimSpace(value)
}

// Block is a run of description lines, either plain lines or bullets.
type Block struct {
	Bullets bool
	Lines   []string
}

// Description is the structured form of a multi-line description.
type Description []Block

// bulletPrefix marks a description line as a bullet point.
const bulletPrefix = "- "

// FormatDescription parses a raw description: each line becomes a line
// break, lines starting with "- " become bullet items, and consecutive
// bullet lines share one list. Blank lines are dropped.
func FormatDescription(raw string) Description {
	var desc Description
	for _, line := range splitLines(raw) {
		bullet := false
		if strings.HasPrefix(line, bulletPrefix) {
			if content := strings.TrimSpace(line[len(bulletPrefix):]); content != "" {
				line, bullet = content, true
			}
		}
		if n := len(desc); n > 0 && desc[n-1].Bullets == bullet {
			desc[n-1].Lines = append(desc[n-1].Lines, line)
			continue
		}
		desc = append(desc, Block{Bullets: bullet, Lines: []string{line}})
	}
	return desc
}

// PlainDescription keeps the raw line structure without bullet handling.
func PlainDescription(raw string) Description {
	return LinesDescription(splitLines(raw)...)
}

// LinesDescription builds a plain description from individual lines,
// skipping blank ones.
func LinesDescription(lines ...string) Description {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return Description{{Lines: kept}}
}

// Empty reports whether the description has no lines.
func (d Description) Empty() bool {
	return len(d) == 0
}

// Text flattens the description to newline separated lines, with bullet
// lines written back as "- item".
func (d Description) Text() string {
	var lines []string
	for _, b := range d {
		for _, l := range b.Lines {
			if b.Bullets {
				l = bulletPrefix + l
			}
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}

// HTML renders the description: plain lines separated by <br>, bullet runs
// as a single <ul>.
func (d Description) HTML() template.HTML {
	var sb strings.Builder
	for _, b := range d {
		if b.Bullets {
			sb.WriteString("<ul>")
			for _, l := range b.Lines {
				sb.WriteString("<li>")
				sb.WriteString(template.HTMLEscapeString(l))
				sb.WriteString("</li>")
			}
			sb.WriteString("</ul>")
			continue
		}
		for i, l := range b.Lines {
			if i > 0 {
				sb.WriteString("<br>")
			}
			sb.WriteString(template.HTMLEscapeString(l))
		}
	}
	//nolint:gosec // every line is escaped above
	return template.HTML(sb.String())
}

func splitLines(raw string) []string {
	var lines []string
	for _, l := range strings.Split(newlines.Replace(raw), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// collapseSpace trims s and folds internal whitespace runs to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
