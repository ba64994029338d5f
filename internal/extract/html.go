package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseError represents a failure to read rendered resume markup
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// FromHTML reads a rendered resume fragment (or full page) back into the
// export form. It gives the same result as FromView on the view the markup
// was rendered from.
func FromHTML(markup string) (Extracted, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return Extracted{}, &ParseError{Message: "failed to parse HTML", Cause: err}
	}

	out := newExtracted()
	preview := doc.Find(".resume-preview").First()
	if preview.Length() == 0 {
		return out, &ParseError{Message: "no resume preview in markup"}
	}
	if preview.HasClass("empty") {
		return out, nil
	}

	out.Name = collapse(preview.Find(".resume-header h1").First())
	preview.Find(".contact-info > span").Each(func(_ int, s *goquery.Selection) {
		out.Contact = append(out.Contact, collapse(s))
	})

	preview.Find(".resume-content > .resume-section").Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("resume-summary") {
			out.Summary = strings.TrimSpace(s.Find("p").First().Text())
			return
		}

		var items []Item
		switch {
		case s.Find(".skill-list").Length() > 0:
			var skills []string
			s.Find(".resume-skill").Each(func(_ int, tag *goquery.Selection) {
				skills = append(skills, collapse(tag))
			})
			items = append(items, skillsItem(skills))
		case s.Find(".language-item").Length() > 0:
			s.Find(".language-item").Each(func(_ int, l *goquery.Selection) {
				items = append(items, languageItem(collapse(l.Find(".language-name")), collapse(l.Find(".language-level"))))
			})
		default:
			s.Find(".resume-item").Each(func(_ int, it *goquery.Selection) {
				items = appendItem(items,
					collapse(it.Find("h3").First()),
					collapse(it.Find(".item-meta").First()),
					descriptionText(it.Find(".item-description").First()))
			})
		}
		out.Sections = appendSection(out.Sections, collapse(s.Find("h2").First()), items)
	})

	return out, nil
}

// descriptionText rebuilds the line structure of a rendered description:
// <br> ends a line and every <li> becomes a "- " line.
func descriptionText(sel *goquery.Selection) string {
	var lines []string
	var current strings.Builder
	flush := func() {
		for _, l := range strings.Split(current.String(), "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		current.Reset()
	}

	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		switch goquery.NodeName(node) {
		case "#text":
			current.WriteString(node.Text())
		case "br":
			flush()
		case "ul", "ol":
			flush()
			node.Find("li").Each(func(_ int, li *goquery.Selection) {
				if text := strings.TrimSpace(li.Text()); text != "" {
					lines = append(lines, "- "+text)
				}
			})
		default:
			flush()
			current.WriteString(node.Text())
			flush()
		}
	})
	flush()

	return strings.Join(lines, "\n")
}

func collapse(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
