// Package extract reduces a rendered resume to the flat form consumed by the
// PDF painter: a name, contact lines, the summary and ordered sections of items.
package extract

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/rendering"
)

// Extracted is the normalized export form of a resume.
type Extracted struct {
	Name     string    `json:"name"`
	Contact  []string  `json:"contact"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
}

// Section is an ordered, titled list of items.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item is one entry of a section. Skills and languages only carry Text.
type Item struct {
	Title       string `json:"title,omitempty"`
	Meta        string `json:"meta,omitempty"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text,omitempty"`
}

func newExtracted() Extracted {
	return Extracted{Contact: []string{}, Sections: []Section{}}
}

// FromView extracts a view. An empty-state view gives an Extracted with no
// name and no sections.
func FromView(v rendering.View) Extracted {
	out := newExtracted()
	if v.Empty {
		return out
	}

	out.Name = v.Name
	for _, c := range v.Contact {
		out.Contact = append(out.Contact, c.Text)
	}
	out.Summary = v.Summary

	for _, s := range v.Sections {
		var items []Item
		switch s.Kind {
		case rendering.SectionSkills:
			items = append(items, skillsItem(s.Skills))
		case rendering.SectionLanguages:
			for _, l := range s.Languages {
				items = append(items, languageItem(l.Name, l.Level))
			}
		default:
			for _, it := range s.Items {
				items = appendItem(items, it.Title, it.Meta, it.Description.Text())
			}
		}
		out.Sections = appendSection(out.Sections, s.Title, items)
	}
	return out
}

func skillsItem(skills []string) Item {
	return Item{Text: strings.Join(skills, ", ")}
}

func languageItem(name, level string) Item {
	if level == "" {
		return Item{Text: name}
	}
	return Item{Text: name + " (" + level + ")"}
}

// appendItem drops items that have neither a title nor a description.
func appendItem(items []Item, title, meta, description string) []Item {
	if title == "" && description == "" {
		return items
	}
	return append(items, Item{Title: title, Meta: meta, Description: description})
}

// appendSection drops sections that ended up without items.
func appendSection(sections []Section, title string, items []Item) []Section {
	if len(items) == 0 {
		return sections
	}
	return append(sections, Section{Title: title, Items: items})
}

// Lines flattens the extracted resume into plain text lines, in reading
// order.
func (e Extracted) Lines() []string {
	var lines []string
	if e.Name != "" {
		lines = append(lines, e.Name)
	}
	if len(e.Contact) > 0 {
		lines = append(lines, strings.Join(e.Contact, " • "))
	}
	if e.Summary != "" {
		lines = append(lines, "", rendering.TitleSummary)
		lines = append(lines, strings.Split(e.Summary, "\n")...)
	}
	for _, s := range e.Sections {
		lines = append(lines, "", s.Title)
		for _, it := range s.Items {
			for _, v := range []string{it.Title, it.Meta, it.Description, it.Text} {
				if v != "" {
					lines = append(lines, strings.Split(v, "\n")...)
				}
			}
		}
	}
	return lines
}
