// Package envelope converts resume documents to and from their JSON forms:
// the versioned export envelope and the lighter session storage record.
package envelope

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// Envelope metadata values.
const (
	Version     = "1.0"
	Application = "Interactive Resume Builder"
)

// Metadata describes an export.
type Metadata struct {
	ExportDate  string `json:"exportDate"`
	Version     string `json:"version"`
	Application string `json:"application"`
}

// Envelope is the exported file format.
type Envelope struct {
	Metadata Metadata        `json:"metadata"`
	Template types.Template  `json:"template"`
	Theme    types.Theme     `json:"theme"`
	Data     *types.Document `json:"data"`
}

// Record is the session storage shape: the envelope without metadata.
type Record struct {
	Data     *types.Document `json:"data"`
	Template types.Template  `json:"template"`
	Theme    types.Theme     `json:"theme"`
}

// Serialize wraps a document in an export envelope stamped with now.
func Serialize(doc *types.Document, tpl types.Template, theme types.Theme, now time.Time) Envelope {
	if doc == nil {
		doc = types.NewDocument()
	}
	return Envelope{
		Metadata: Metadata{
			ExportDate:  now.UTC().Format(time.RFC3339),
			Version:     Version,
			Application: Application,
		},
		Template: types.ParseTemplate(string(tpl)),
		Theme:    types.ParseTheme(string(theme)),
		Data:     doc,
	}
}

// Marshal encodes an envelope with two-space indentation.
func Marshal(env Envelope) ([]byte, error) {
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return out, nil
}

// EncodeRecord encodes the session storage record.
func EncodeRecord(doc *types.Document, tpl types.Template, theme types.Theme) ([]byte, error) {
	if doc == nil {
		doc = types.NewDocument()
	}
	out, err := json.Marshal(Record{
		Data:     doc,
		Template: types.ParseTemplate(string(tpl)),
		Theme:    types.ParseTheme(string(theme)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session record: %w", err)
	}
	return out, nil
}

// DecodeRecord reads a session storage record with the same tolerance as
// Deserialize.
func DecodeRecord(data []byte) (*types.Document, types.Template, types.Theme) {
	return Deserialize(data)
}

// Filename builds a download name from the owner's name:
// Filename("Jane Doe", "Resume.pdf") is "Jane_Doe_Resume.pdf". A blank name
// gives the suffix alone.
func Filename(fullName, suffix string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return ' '
		}
		return r
	}, fullName)

	parts := strings.Fields(name)
	if len(parts) == 0 {
		return suffix
	}
	return strings.Join(parts, "_") + "_" + suffix
}
