package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/extract"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// Page geometry, in millimetres.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	margin       = 20.0
	contentWidth = pageWidth - 2*margin
	lineHeight   = 4.0
	topY         = 20.0

	// a section or item starting below these lines moves to a new page
	sectionLimit = 250.0
	itemLimit    = 270.0
)

const application = "Interactive Resume Builder"

var (
	white = rendering.Color{R: 255, G: 255, B: 255}
	black = rendering.Color{}
	gray  = rendering.Color{R: 100, G: 100, B: 100}
)

type painter struct {
	c     Canvas
	style rendering.Style
	y     float64
}

// Render paints an extracted resume onto c, starting a new page. Header
// treatment, colours and sizes follow the style's template and theme.
func Render(c Canvas, e extract.Extracted, style rendering.Style) {
	p := &painter{c: c, style: style, y: topY}
	c.AddPage()

	p.header(e)
	if e.Summary != "" {
		p.section(rendering.TitleSummary, func() {
			p.block(e.Summary, contentWidth)
			p.y += 8
		})
	}
	for _, s := range e.Sections {
		p.section(s.Title, func() { p.items(s.Items) })
	}
}

// Write renders e as a PDF and writes it to w.
func Write(w io.Writer, e extract.Extracted, style rendering.Style) error {
	doc := NewDocument()
	if e.Name != "" {
		doc.SetTitle(e.Name)
	}
	Render(doc, e, style)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (p *painter) font() string {
	return p.style.Font.PDF
}

func (p *painter) header(e extract.Extracted) {
	s := p.style
	switch s.Header {
	case rendering.HeaderBanner:
		p.c.SetFillColor(s.Palette.Primary)
		p.c.Rect(0, 0, pageWidth, 35)
		p.y = 15
	case rendering.HeaderLightBanner:
		p.c.SetFillColor(s.Palette.Light)
		p.c.Rect(0, 0, pageWidth, 30)
		p.y = 15
	}

	if e.Name != "" {
		size, advance := 24.0, 10.0
		if s.Minimal() {
			size, advance = 20, 8
		}
		p.c.SetFont(p.font(), "B", size)
		if s.Header == rendering.HeaderBanner {
			p.c.SetTextColor(white)
		} else {
			p.c.SetTextColor(s.Palette.Primary)
		}
		p.centered(e.Name, p.y)
		p.y += advance
	}

	if len(e.Contact) > 0 {
		p.c.SetFont(p.font(), "", 10)
		p.c.SetTextColor(gray)
		lines := wrap(p.c, strings.Join(e.Contact, " • "), contentWidth)
		for i, line := range lines {
			p.centered(line, p.y+float64(i)*lineHeight)
		}
		p.y += float64(len(lines))*lineHeight + 8
	}

	if s.Header == rendering.HeaderBanner {
		p.y += 5
	}

	ruleWidth := 0.5
	if s.Minimal() {
		ruleWidth = 1
	}
	p.c.SetDrawColor(s.Palette.Primary)
	p.c.SetLineWidth(ruleWidth)
	p.c.Line(margin, p.y, pageWidth-margin, p.y)
	p.y += 8
}

func (p *painter) section(title string, body func()) {
	if p.y > sectionLimit {
		p.newPage()
	}

	s := p.style
	titleSize, advance, bodySize := 14.0, 8.0, 10.0
	if s.Minimal() {
		titleSize, advance, bodySize = 12, 6, 9
	}

	p.c.SetFont(p.font(), "B", titleSize)
	p.c.SetTextColor(s.Palette.Primary)
	if s.Minimal() {
		p.c.Line(margin, p.y+1, margin+p.c.TextWidth(title), p.y+1)
	}
	p.c.Text(margin, p.y, title)
	p.y += advance

	p.c.SetFont(p.font(), "", bodySize)
	p.c.SetTextColor(s.Palette.Text)
	body()
	p.y += 6
}

func (p *painter) items(items []extract.Item) {
	size := 10.0
	if p.style.Minimal() {
		size = 9
	}

	for _, it := range items {
		if p.y > itemLimit {
			p.newPage()
		}

		if it.Title != "" {
			p.c.SetFont(p.font(), "B", size)
			p.c.SetTextColor(p.style.Palette.Text)
			p.c.Text(margin, p.y, it.Title)
			p.y += 5
		}
		if it.Meta != "" {
			p.c.SetFont(p.font(), "I", size)
			p.c.SetTextColor(gray)
			p.block(it.Meta, contentWidth)
			p.y += 2
		}
		for _, body := range []string{it.Description, it.Text} {
			if body == "" {
				continue
			}
			p.c.SetFont(p.font(), "", size)
			p.c.SetTextColor(black)
			p.block(body, contentWidth)
			p.y += 2
		}
		p.y += 4
	}
}

// block paints wrapped text at the left margin and advances past it.
func (p *painter) block(text string, width float64) {
	lines := wrap(p.c, text, width)
	for i, line := range lines {
		p.c.Text(margin, p.y+float64(i)*lineHeight, line)
	}
	p.y += float64(len(lines)) * lineHeight
}

func (p *painter) centered(text string, y float64) {
	p.c.Text((pageWidth-p.c.TextWidth(text))/2, y, text)
}

func (p *painter) newPage() {
	p.c.AddPage()
	p.y = topY
}
