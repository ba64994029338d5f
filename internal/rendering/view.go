package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section titles shown on the resume.
const (
	TitleSummary        = "Professional Summary"
	TitleExperience     = "Work Experience"
	TitleEducation      = "Education"
	TitleSkills         = "Skills"
	TitleProjects       = "Projects"
	TitleCertifications = "Certifications"
	TitleLanguages      = "Languages"
	TitleAwards         = "Awards & Achievements"
	TitleReferences     = "References"
)

// NamePlaceholder is shown when the document has no name.
const NamePlaceholder = "Your Name"

// SectionKind selects the markup used for a section body.
type SectionKind string

// Section kinds. Skills and languages have their own layouts; every other
// section is a list of items.
const (
	SectionItems     SectionKind = "items"
	SectionSkills    SectionKind = "skills"
	SectionLanguages SectionKind = "languages"
)

// View is the normalized visual tree of a resume. Both the HTML and the PDF
// backends are driven from it, so they agree on what is visible.
type View struct {
	Empty    bool
	Style    Style
	Name     string
	Contact  []ContactItem
	Summary  string
	Sections []Section
}

// ContactItem is one entry of the header contact line.
type ContactItem struct {
	Icon string
	Text string
	Href string
}

// Section is one titled block of the resume body.
type Section struct {
	Kind      SectionKind
	Class     string
	Title     string
	Items     []Item
	Skills    []string
	Languages []LanguageItem
}

// Item is one rendered entry of an item section.
type Item struct {
	Title       string
	Meta        string
	Description Description
	Links       []Link
}

// Link is an outbound link shown under a project.
type Link struct {
	Icon  string
	Label string
	Href  string
}

// LanguageItem is one rendered language.
type LanguageItem struct {
	Name  string
	Level string
}

// BuildView computes the visual tree for a document. Sections and entries
// are included by the same rules the resume has always used: a section
// appears when its collection is non-empty and an entry appears when its
// identifying field is set.
func BuildView(doc *types.Document, template types.Template, theme types.Theme) View {
	v := View{Style: StyleFor(template, theme)}
	if !doc.HasContent() {
		v.Empty = true
		return v
	}

	p := doc.Personal
	v.Name = collapseSpace(p.FullName)
	if v.Name == "" {
		v.Name = NamePlaceholder
	}
	v.Contact = buildContact(p)
	v.Summary = strings.TrimSpace(newlines.Replace(p.Summary))

	if len(doc.Experience) > 0 {
		v.Sections = append(v.Sections, experienceSection(doc.Experience))
	}
	if len(doc.Education) > 0 {
		v.Sections = append(v.Sections, educationSection(doc.Education))
	}
	if len(doc.Skills) > 0 {
		skills := make([]string, len(doc.Skills))
		for i, s := range doc.Skills {
			skills[i] = collapseSpace(s)
		}
		v.Sections = append(v.Sections, Section{Kind: SectionSkills, Class: "resume-skills", Title: TitleSkills, Skills: skills})
	}
	if len(doc.Projects) > 0 {
		v.Sections = append(v.Sections, projectSection(doc.Projects))
	}
	if len(doc.Certifications) > 0 {
		v.Sections = append(v.Sections, certificationSection(doc.Certifications))
	}
	if len(doc.Languages) > 0 {
		v.Sections = append(v.Sections, languageSection(doc.Languages))
	}
	if len(doc.Awards) > 0 {
		v.Sections = append(v.Sections, awardSection(doc.Awards))
	}
	if len(doc.References) > 0 {
		v.Sections = append(v.Sections, referenceSection(doc.References))
	}
	if title := collapseSpace(doc.CustomSection.Title); title != "" && len(doc.CustomSection.Items) > 0 {
		v.Sections = append(v.Sections, customSection(title, doc.CustomSection.Items))
	}
	return v
}

func buildContact(p types.Personal) []ContactItem {
	var items []ContactItem
	add := func(icon, value, text, href string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		items = append(items, ContactItem{Icon: icon, Text: collapseSpace(text), Href: href})
	}
	add("envelope", p.Email, p.Email, "")
	add("phone", p.Phone, p.Phone, "")
	add("map-marker-alt", p.Location, p.Location, "")
	add("globe", p.Website, p.Website, "")
	add("linkedin", p.LinkedIn, "LinkedIn", strings.TrimSpace(p.LinkedIn))
	add("github", p.GitHub, "GitHub", strings.TrimSpace(p.GitHub))
	return items
}

func experienceSection(entries []types.Experience) Section {
	s := Section{Kind: SectionItems, Class: "resume-experience", Title: TitleExperience}
	for _, e := range entries {
		if blank(e.JobTitle) && blank(e.Company) {
			continue
		}
		s.Items = append(s.Items, Item{
			Title: collapseSpace(e.JobTitle),
			Meta: joinNonEmpty(" • ",
				joinNonEmpty(", ", collapseSpace(e.Company), collapseSpace(e.Location)),
				DateRange(e.StartDate, e.EndDate, e.Current)),
			Description: FormatDescription(e.Description),
		})
	}
	return s
}

func educationSection(entries []types.Education) Section {
	s := Section{Kind: SectionItems, Class: "resume-education", Title: TitleEducation}
	for _, e := range entries {
		if blank(e.Degree) && blank(e.Institution) {
			continue
		}
		s.Items = append(s.Items, Item{
			Title: collapseSpace(e.Degree),
			Meta: joinNonEmpty(" • ",
				joinNonEmpty(", ", collapseSpace(e.Institution), collapseSpace(e.Location)),
				DateRange(e.StartDate, e.EndDate, false),
				prefixed("GPA: ", collapseSpace(e.GPA))),
			Description: PlainDescription(e.Description),
		})
	}
	return s
}

func projectSection(entries []types.Project) Section {
	s := Section{Kind: SectionItems, Class: "resume-projects", Title: TitleProjects}
	for _, p := range entries {
		if blank(p.Name) {
			continue
		}
		item := Item{
			Title: collapseSpace(p.Name),
			Meta: joinNonEmpty(" • ",
				collapseSpace(p.Technologies),
				DateRange(p.StartDate, p.EndDate, false)),
			Description: PlainDescription(p.Description),
		}
		if !blank(p.LiveURL) {
			item.Links = append(item.Links, Link{Icon: "external-link-alt", Label: "Live Demo", Href: strings.TrimSpace(p.LiveURL)})
		}
		if !blank(p.GitHubURL) {
			item.Links = append(item.Links, Link{Icon: "github", Label: "GitHub", Href: strings.TrimSpace(p.GitHubURL)})
		}
		s.Items = append(s.Items, item)
	}
	return s
}

func certificationSection(entries []types.Certification) Section {
	s := Section{Kind: SectionItems, Class: "resume-certifications", Title: TitleCertifications}
	for _, c := range entries {
		if blank(c.Name) {
			continue
		}
		s.Items = append(s.Items, Item{
			Title: collapseSpace(c.Name),
			Meta: joinNonEmpty(" • ",
				collapseSpace(c.Issuer),
				joinNonEmpty(" - ", FormatDate(c.IssueDate), FormatDate(c.ExpiryDate)),
				prefixed("ID: ", collapseSpace(c.CredentialID))),
		})
	}
	return s
}

func languageSection(entries []types.Language) Section {
	s := Section{Kind: SectionLanguages, Class: "resume-languages", Title: TitleLanguages}
	for _, l := range entries {
		if blank(l.Name) {
			continue
		}
		s.Languages = append(s.Languages, LanguageItem{
			Name:  collapseSpace(l.Name),
			Level: l.Proficiency.Label(),
		})
	}
	return s
}

func awardSection(entries []types.Award) Section {
	s := Section{Kind: SectionItems, Class: "resume-awards", Title: TitleAwards}
	for _, a := range entries {
		if blank(a.Title) {
			continue
		}
		s.Items = append(s.Items, Item{
			Title:       collapseSpace(a.Title),
			Meta:        joinNonEmpty(" • ", collapseSpace(a.Issuer), FormatDate(a.Date)),
			Description: PlainDescription(a.Description),
		})
	}
	return s
}

func referenceSection(entries []types.Reference) Section {
	s := Section{Kind: SectionItems, Class: "resume-references", Title: TitleReferences}
	for _, r := range entries {
		if blank(r.Name) {
			continue
		}
		s.Items = append(s.Items, Item{
			Title: collapseSpace(r.Name),
			Meta: joinNonEmpty(" • ",
				joinNonEmpty(", ", collapseSpace(r.Title), collapseSpace(r.Company)),
				collapseSpace(r.Relationship)),
			Description: LinesDescription(r.Email, r.Phone),
		})
	}
	return s
}

func customSection(title string, entries []types.CustomEntry) Section {
	s := Section{Kind: SectionItems, Class: "resume-custom", Title: title}
	for _, c := range entries {
		if blank(c.Title) {
			continue
		}
		item := Item{
			Title:       collapseSpace(c.Title),
			Description: PlainDescription(c.Description),
		}
		// the date is only shown alongside a subtitle
		if !blank(c.Subtitle) {
			item.Meta = joinNonEmpty(" • ", collapseSpace(c.Subtitle), FormatDate(c.Date))
		}
		s.Items = append(s.Items, item)
	}
	return s
}

// newlines folds CR and CRLF line endings to LF, the way an HTML parser reads
// them back.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
