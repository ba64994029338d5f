package pdf

import (
	"bytes"
	"fmt"
	"io"
)

// Plain layout: unstyled text from the top-left corner.
const (
	plainMargin     = 15.0
	plainWidth      = pageWidth - 2*plainMargin
	plainSize       = 11.0
	plainLineHeight = 5.0
)

// WritePlain writes lines as an unstyled PDF, wrapping long lines and
// continuing on new pages as needed. It is the fallback when the styled
// layout cannot be produced.
func WritePlain(w io.Writer, lines []string) error {
	doc := NewDocument()
	doc.AddPage()
	doc.SetFont("Helvetica", "", plainSize)
	doc.SetTextColor(black)

	y := plainMargin
	for _, line := range lines {
		for _, l := range wrap(doc, line, plainWidth) {
			if y > pageHeight-plainMargin {
				doc.AddPage()
				y = plainMargin
			}
			doc.Text(plainMargin, y, l)
			y += plainLineHeight
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return fmt.Errorf("failed to write plain PDF: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write plain PDF: %w", err)
	}
	return nil
}
