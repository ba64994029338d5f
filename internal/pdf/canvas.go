// Package pdf paints resumes as A4 PDF documents.
//
// The painter works against the small Canvas interface (pages, fonts,
// colours, rectangles, lines and text) so layout decisions can be tested
// without producing bytes. Document is the fpdf backed Canvas used for real
// output; BrowserRenderer is an alternative engine that prints the HTML page
// through headless Chrome.
package pdf

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-builder/internal/rendering"
)

// Canvas is the set of paint primitives the layout needs. Units are
// millimetres, y coordinates are text baselines.
type Canvas interface {
	AddPage()
	SetFont(family, style string, size float64)
	SetTextColor(c rendering.Color)
	SetFillColor(c rendering.Color)
	SetDrawColor(c rendering.Color)
	SetLineWidth(width float64)
	Rect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	Text(x, y float64, s string)
	TextWidth(s string) float64
}

// Document is a Canvas writing a portrait A4 PDF with the core fonts.
type Document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewDocument creates an empty A4 document measured in millimetres.
func NewDocument() *Document {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(margin, margin, margin)
	f.SetCreator(application, true)
	return &Document{
		pdf: f,
		// core fonts are cp1252 encoded
		tr: f.UnicodeTranslatorFromDescriptor(""),
	}
}

// SetTitle records the document title in the PDF metadata.
func (d *Document) SetTitle(title string) {
	title = strings.ToValidUTF8(title, "\uFFFD")
	d.pdf.SetTitle(title, true)
	d.pdf.SetAuthor(title, true)
}

func (d *Document) AddPage() { d.pdf.AddPage() }

func (d *Document) SetFont(family, style string, size float64) {
	d.pdf.SetFont(family, style, size)
}

func (d *Document) SetTextColor(c rendering.Color) { d.pdf.SetTextColor(c.R, c.G, c.B) }
func (d *Document) SetFillColor(c rendering.Color) { d.pdf.SetFillColor(c.R, c.G, c.B) }
func (d *Document) SetDrawColor(c rendering.Color) { d.pdf.SetDrawColor(c.R, c.G, c.B) }
func (d *Document) SetLineWidth(width float64) { d.pdf.SetLineWidth(width) }

// Rect paints a filled rectangle in the fill colour.
func (d *Document) Rect(x, y, w, h float64) { d.pdf.Rect(x, y, w, h, "F") }

func (d *Document) Line(x1, y1, x2, y2 float64) { d.pdf.Line(x1, y1, x2, y2) }

func (d *Document) Text(x, y float64, s string) { d.pdf.Text(x, y, d.tr(s)) }

func (d *Document) TextWidth(s string) float64 { return d.pdf.GetStringWidth(d.tr(s)) }

// Output writes the finished PDF. Errors recorded while painting are
// reported here.
func (d *Document) Output(w io.Writer) error {
	return d.pdf.Output(w)
}

// wrap splits text into lines no wider than width, breaking at spaces.
// Newlines always start a new line; a word wider than the line is cut.
func wrap(c Canvas, text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := ""
		for _, word := range words {
			for c.TextWidth(word) > width {
				cut := fitPrefix(c, word, width)
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, word[:cut])
				word = word[cut:]
			}
			if word == "" {
				continue
			}

			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if c.TextWidth(candidate) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// fitPrefix returns the byte length of the longest prefix of word that fits
// in width, never less than one rune.
func fitPrefix(c Canvas, word string, width float64) int {
	cut := 0
	for i, r := range word {
		next := i + utf8.RuneLen(r)
		if cut > 0 && c.TextWidth(word[:next]) > width {
			break
		}
		cut = next
	}
	return cut
}
