// Package types provides type definitions for the structured resume document.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ID identifies an entry within its collection. It is assigned at creation
// and never reused within a session.
type ID string

// NewID returns a fresh random entry identifier.
func NewID() ID {
	return ID(uuid.New().String())
}

// UnmarshalJSON accepts both string identifiers and the numeric
// timestamp identifiers written by older exports.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*id = ID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}

// Personal holds the scalar contact and summary fields.
type Personal struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience is one job in the work history.
type Experience struct {
	ID          ID     `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one degree or programme.
type Education struct {
	ID          ID     `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// Project is a personal or professional project.
type Project struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	LiveURL      string `json:"liveUrl"`
	GitHubURL    string `json:"githubUrl"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// Certification is a credential issued by some body.
type Certification struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	IssueDate    string `json:"issueDate"`
	ExpiryDate   string `json:"expiryDate"`
	CredentialID string `json:"credentialId"`
	URL          string `json:"url"`
}

// Language is a spoken language with a proficiency level.
type Language struct {
	ID          ID          `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// Award is an award or achievement.
type Award struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Reference is a professional reference.
type Reference struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// CustomEntry is one item of the user-titled custom section.
type CustomEntry struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// CustomSection is the single free-form section.
type CustomSection struct {
	Title string        `json:"title"`
	Items []CustomEntry `json:"items"`
}

// Document is the canonical resume data edited by a session.
type Document struct {
	Personal       Personal        `json:"personal"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Awards         []Award         `json:"awards"`
	References     []Reference     `json:"references"`
	CustomSection  CustomSection   `json:"customSection"`
}

// NewDocument returns an empty document with non-nil collections, so it
// serializes with empty arrays instead of nulls.
func NewDocument() *Document {
	return &Document{
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []string{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Awards:         []Award{},
		References:     []Reference{},
		CustomSection:  CustomSection{Items: []CustomEntry{}},
	}
}

// HasContent reports whether the document has anything worth rendering.
// Any single populated field or collection makes the document non-empty.
func (d *Document) HasContent() bool {
	if d == nil {
		return false
	}
	return notBlank(d.Personal.FullName) ||
		notBlank(d.Personal.Email) ||
		notBlank(d.Personal.Summary) ||
		len(d.Experience) > 0 ||
		len(d.Education) > 0 ||
		len(d.Skills) > 0 ||
		len(d.Projects) > 0 ||
		len(d.Certifications) > 0 ||
		len(d.Languages) > 0 ||
		len(d.Awards) > 0 ||
		len(d.References) > 0 ||
		notBlank(d.CustomSection.Title) ||
		len(d.CustomSection.Items) > 0
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return NewDocument()
	}
	c := *d
	c.Experience = append([]Experience{}, d.Experience...)
	c.Education = append([]Education{}, d.Education...)
	c.Skills = append([]string{}, d.Skills...)
	c.Projects = append([]Project{}, d.Projects...)
	c.Certifications = append([]Certification{}, d.Certifications...)
	c.Languages = append([]Language{}, d.Languages...)
	c.Awards = append([]Award{}, d.Awards...)
	c.References = append([]Reference{}, d.References...)
	c.CustomSection.Items = append([]CustomEntry{}, d.CustomSection.Items...)
	return &c
}

// Normalize re-establishes the document invariants on data that came from
// outside the mutation API: nil collections become empty, missing or
// duplicate identifiers are replaced, skills are trimmed and deduplicated,
// current experience entries lose their end date and unknown proficiency
// levels fall back to beginner.
func (d *Document) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	if d.Awards == nil {
		d.Awards = []Award{}
	}
	if d.References == nil {
		d.References = []Reference{}
	}
	if d.CustomSection.Items == nil {
		d.CustomSection.Items = []CustomEntry{}
	}

	seen := make(map[ID]bool)
	for i := range d.Experience {
		d.Experience[i].ID = uniqueID(seen, d.Experience[i].ID)
		if d.Experience[i].Current {
			d.Experience[i].EndDate = ""
		}
	}
	seen = make(map[ID]bool)
	for i := range d.Education {
		d.Education[i].ID = uniqueID(seen, d.Education[i].ID)
	}
	seen = make(map[ID]bool)
	for i := range d.Projects {
		d.Projects[i].ID = uniqueID(seen, d.Projects[i].ID)
	}
	seen = make(map[ID]bool)
	for i := range d.Certifications {
		d.Certifications[i].ID = uniqueID(seen, d.Certifications[i].ID)
	}
	seen = make(map[ID]bool)
	for i := range d.Languages {
		d.Languages[i].ID = uniqueID(seen, d.Languages[i].ID)
		if !d.Languages[i].Proficiency.Valid() {
			d.Languages[i].Proficiency = Beginner
		}
	}
	seen = make(map[ID]bool)
	for i := range d.Awards {
		d.Awards[i].ID = uniqueID(seen, d.Awards[i].ID)
	}
	seen = make(map[ID]bool)
	for i := range d.References {
		d.References[i].ID = uniqueID(seen, d.References[i].ID)
	}
	seen = make(map[ID]bool)
	for i := range d.CustomSection.Items {
		d.CustomSection.Items[i].ID = uniqueID(seen, d.CustomSection.Items[i].ID)
	}

	skills := make([]string, 0, len(d.Skills))
	seenSkill := make(map[string]bool)
	for _, s := range d.Skills {
		s = strings.TrimSpace(s)
		if s == "" || seenSkill[s] {
			continue
		}
		seenSkill[s] = true
		skills = append(skills, s)
	}
	d.Skills = skills
}

func uniqueID(seen map[ID]bool, id ID) ID {
	if id == "" || seen[id] {
		id = NewID()
	}
	seen[id] = true
	return id
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
