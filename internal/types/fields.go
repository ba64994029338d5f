package types

import "fmt"

// Field identifiers are closed enums per entry kind. Outer surfaces that
// receive field names as strings convert them with the Parse functions;
// everything inside the module addresses fields by constant.

// PersonalField identifies a scalar personal field.
type PersonalField int

// Personal fields in form order.
const (
	PersonalFullName PersonalField = iota
	PersonalEmail
	PersonalPhone
	PersonalLocation
	PersonalWebsite
	PersonalLinkedIn
	PersonalGitHub
	PersonalSummary
)

// PersonalFields lists every personal field.
var PersonalFields = []PersonalField{
	PersonalFullName, PersonalEmail, PersonalPhone, PersonalLocation,
	PersonalWebsite, PersonalLinkedIn, PersonalGitHub, PersonalSummary,
}

var personalFieldNames = []string{"fullName", "email", "phone", "location", "website", "linkedin", "github", "summary"}

func (f PersonalField) String() string { return fieldName(personalFieldNames, int(f)) }

// ParsePersonalField converts a JSON field name to a PersonalField.
func ParsePersonalField(name string) (PersonalField, error) {
	i, err := parseField("personal", personalFieldNames, name)
	return PersonalField(i), err
}

// Get returns the value of f in p.
func (f PersonalField) Get(p *Personal) string {
	switch f {
	case PersonalFullName:
		return p.FullName
	case PersonalEmail:
		return p.Email
	case PersonalPhone:
		return p.Phone
	case PersonalLocation:
		return p.Location
	case PersonalWebsite:
		return p.Website
	case PersonalLinkedIn:
		return p.LinkedIn
	case PersonalGitHub:
		return p.GitHub
	case PersonalSummary:
		return p.Summary
	}
	return ""
}

// Set assigns value to f in p.
func (f PersonalField) Set(p *Personal, value string) {
	switch f {
	case PersonalFullName:
		p.FullName = value
	case PersonalEmail:
		p.Email = value
	case PersonalPhone:
		p.Phone = value
	case PersonalLocation:
		p.Location = value
	case PersonalWebsite:
		p.Website = value
	case PersonalLinkedIn:
		p.LinkedIn = value
	case PersonalGitHub:
		p.GitHub = value
	case PersonalSummary:
		p.Summary = value
	}
}

// ExperienceField identifies a string field of an Experience entry. The
// boolean current flag has its own operation.
type ExperienceField int

// Experience fields.
const (
	ExperienceJobTitle ExperienceField = iota
	ExperienceCompany
	ExperienceLocation
	ExperienceStartDate
	ExperienceEndDate
	ExperienceDescription
)

// ExperienceFields lists every string field of an Experience entry.
var ExperienceFields = []ExperienceField{
	ExperienceJobTitle, ExperienceCompany, ExperienceLocation,
	ExperienceStartDate, ExperienceEndDate, ExperienceDescription,
}

var experienceFieldNames = []string{"jobTitle", "company", "location", "startDate", "endDate", "description"}

func (f ExperienceField) String() string { return fieldName(experienceFieldNames, int(f)) }

// ParseExperienceField converts a JSON field name to an ExperienceField.
func ParseExperienceField(name string) (ExperienceField, error) {
	i, err := parseField("experience", experienceFieldNames, name)
	return ExperienceField(i), err
}

// Get returns the value of f in e.
func (f ExperienceField) Get(e *Experience) string {
	switch f {
	case ExperienceJobTitle:
		return e.JobTitle
	case ExperienceCompany:
		return e.Company
	case ExperienceLocation:
		return e.Location
	case ExperienceStartDate:
		return e.StartDate
	case ExperienceEndDate:
		return e.EndDate
	case ExperienceDescription:
		return e.Description
	}
	return ""
}

// Set assigns value to f in e.
func (f ExperienceField) Set(e *Experience, value string) {
	switch f {
	case ExperienceJobTitle:
		e.JobTitle = value
	case ExperienceCompany:
		e.Company = value
	case ExperienceLocation:
		e.Location = value
	case ExperienceStartDate:
		e.StartDate = value
	case ExperienceEndDate:
		e.EndDate = value
	case ExperienceDescription:
		e.Description = value
	}
}

// EducationField identifies a field of an Education entry.
type EducationField int

// Education fields.
const (
	EducationDegree EducationField = iota
	EducationInstitution
	EducationLocation
	EducationStartDate
	EducationEndDate
	EducationGPA
	EducationDescription
)

// EducationFields lists every field of an Education entry.
var EducationFields = []EducationField{
	EducationDegree, EducationInstitution, EducationLocation,
	EducationStartDate, EducationEndDate, EducationGPA, EducationDescription,
}

var educationFieldNames = []string{"degree", "institution", "location", "startDate", "endDate", "gpa", "description"}

func (f EducationField) String() string { return fieldName(educationFieldNames, int(f)) }

// ParseEducationField converts a JSON field name to an EducationField.
func ParseEducationField(name string) (EducationField, error) {
	i, err := parseField("education", educationFieldNames, name)
	return EducationField(i), err
}

// Get returns the value of f in e.
func (f EducationField) Get(e *Education) string {
	switch f {
	case EducationDegree:
		return e.Degree
	case EducationInstitution:
		return e.Institution
	case EducationLocation:
		return e.Location
	case EducationStartDate:
		return e.StartDate
	case EducationEndDate:
		return e.EndDate
	case EducationGPA:
		return e.GPA
	case EducationDescription:
		return e.Description
	}
	return ""
}

// Set assigns value to f in e.
func (f EducationField) Set(e *Education, value string) {
	switch f {
	case EducationDegree:
		e.Degree = value
	case EducationInstitution:
		e.Institution = value
	case EducationLocation:
		e.Location = value
	case EducationStartDate:
		e.StartDate = value
	case EducationEndDate:
		e.EndDate = value
	case EducationGPA:
		e.GPA = value
	case EducationDescription:
		e.Description = value
	}
}

// ProjectField identifies a field of a Project entry.
type ProjectField int

// Project fields.
const (
	ProjectName ProjectField = iota
	ProjectDescription
	ProjectTechnologies
	ProjectLiveURL
	ProjectGitHubURL
	ProjectStartDate
	ProjectEndDate
)

// ProjectFields lists every field of a Project entry.
var ProjectFields = []ProjectField{
	ProjectName, ProjectDescription, ProjectTechnologies,
	ProjectLiveURL, ProjectGitHubURL, ProjectStartDate, ProjectEndDate,
}

var projectFieldNames = []string{"name", "description", "technologies", "liveUrl", "githubUrl", "startDate", "endDate"}

func (f ProjectField) String() string { return fieldName(projectFieldNames, int(f)) }

// ParseProjectField converts a JSON field name to a ProjectField.
func ParseProjectField(name string) (ProjectField, error) {
	i, err := parseField("projects", projectFieldNames, name)
	return ProjectField(i), err
}

// Get returns the value of f in p.
func (f ProjectField) Get(p *Project) string {
	switch f {
	case ProjectName:
		return p.Name
	case ProjectDescription:
		return p.Description
	case ProjectTechnologies:
		return p.Technologies
	case ProjectLiveURL:
		return p.LiveURL
	case ProjectGitHubURL:
		return p.GitHubURL
	case ProjectStartDate:
		return p.StartDate
	case ProjectEndDate:
		return p.EndDate
	}
	return ""
}

// Set assigns value to f in p.
func (f ProjectField) Set(p *Project, value string) {
	switch f {
	case ProjectName:
		p.Name = value
	case ProjectDescription:
		p.Description = value
	case ProjectTechnologies:
		p.Technologies = value
	case ProjectLiveURL:
		p.LiveURL = value
	case ProjectGitHubURL:
		p.GitHubURL = value
	case ProjectStartDate:
		p.StartDate = value
	case ProjectEndDate:
		p.EndDate = value
	}
}

// CertificationField identifies a field of a Certification entry.
type CertificationField int

// Certification fields.
const (
	CertificationName CertificationField = iota
	CertificationIssuer
	CertificationIssueDate
	CertificationExpiryDate
	CertificationCredentialID
	CertificationURL
)

// CertificationFields lists every field of a Certification entry.
var CertificationFields = []CertificationField{
	CertificationName, CertificationIssuer, CertificationIssueDate,
	CertificationExpiryDate, CertificationCredentialID, CertificationURL,
}

var certificationFieldNames = []string{"name", "issuer", "issueDate", "expiryDate", "credentialId", "url"}

func (f CertificationField) String() string { return fieldName(certificationFieldNames, int(f)) }

// ParseCertificationField converts a JSON field name to a CertificationField.
func ParseCertificationField(name string) (CertificationField, error) {
	i, err := parseField("certifications", certificationFieldNames, name)
	return CertificationField(i), err
}

// Get returns the value of f in c.
func (f CertificationField) Get(c *Certification) string {
	switch f {
	case CertificationName:
		return c.Name
	case CertificationIssuer:
		return c.Issuer
	case CertificationIssueDate:
		return c.IssueDate
	case CertificationExpiryDate:
		return c.ExpiryDate
	case CertificationCredentialID:
		return c.CredentialID
	case CertificationURL:
		return c.URL
	}
	return ""
}

// Set assigns value to f in c.
func (f CertificationField) Set(c *Certification, value string) {
	switch f {
	case CertificationName:
		c.Name = value
	case CertificationIssuer:
		c.Issuer = value
	case CertificationIssueDate:
		c.IssueDate = value
	case CertificationExpiryDate:
		c.ExpiryDate = value
	case CertificationCredentialID:
		c.CredentialID = value
	case CertificationURL:
		c.URL = value
	}
}

// LanguageField identifies a field of a Language entry.
type LanguageField int

// Language fields.
const (
	LanguageName LanguageField = iota
	LanguageProficiency
)

// LanguageFields lists every field of a Language entry.
var LanguageFields = []LanguageField{LanguageName, LanguageProficiency}

var languageFieldNames = []string{"name", "proficiency"}

func (f LanguageField) String() string { return fieldName(languageFieldNames, int(f)) }

// ParseLanguageField converts a JSON field name to a LanguageField.
func ParseLanguageField(name string) (LanguageField, error) {
	i, err := parseField("languages", languageFieldNames, name)
	return LanguageField(i), err
}

// Get returns the value of f in l.
func (f LanguageField) Get(l *Language) string {
	switch f {
	case LanguageName:
		return l.Name
	case LanguageProficiency:
		return string(l.Proficiency)
	}
	return ""
}

// Set assigns value to f in l. Proficiency values outside the enum are
// ignored and Set reports false.
func (f LanguageField) Set(l *Language, value string) bool {
	switch f {
	case LanguageName:
		l.Name = value
	case LanguageProficiency:
		p, ok := ParseProficiency(value)
		if !ok {
			return false
		}
		l.Proficiency = p
	}
	return true
}

// AwardField identifies a field of an Award entry.
type AwardField int

// Award fields.
const (
	AwardTitle AwardField = iota
	AwardIssuer
	AwardDate
	AwardDescription
)

// AwardFields lists every field of an Award entry.
var AwardFields = []AwardField{AwardTitle, AwardIssuer, AwardDate, AwardDescription}

var awardFieldNames = []string{"title", "issuer", "date", "description"}

func (f AwardField) String() string { return fieldName(awardFieldNames, int(f)) }

// ParseAwardField converts a JSON field name to an AwardField.
func ParseAwardField(name string) (AwardField, error) {
	i, err := parseField("awards", awardFieldNames, name)
	return AwardField(i), err
}

// Get returns the value of f in a.
func (f AwardField) Get(a *Award) string {
	switch f {
	case AwardTitle:
		return a.Title
	case AwardIssuer:
		return a.Issuer
	case AwardDate:
		return a.Date
	case AwardDescription:
		return a.Description
	}
	return ""
}

// Set assigns value to f in a.
func (f AwardField) Set(a *Award, value string) {
	switch f {
	case AwardTitle:
		a.Title = value
	case AwardIssuer:
		a.Issuer = value
	case AwardDate:
		a.Date = value
	case AwardDescription:
		a.Description = value
	}
}

// ReferenceField identifies a field of a Reference entry.
type ReferenceField int

// Reference fields.
const (
	ReferenceName ReferenceField = iota
	ReferenceTitle
	ReferenceCompany
	ReferenceEmail
	ReferencePhone
	ReferenceRelationship
)

// ReferenceFields lists every field of a Reference entry.
var ReferenceFields = []ReferenceField{
	ReferenceName, ReferenceTitle, ReferenceCompany,
	ReferenceEmail, ReferencePhone, ReferenceRelationship,
}

var referenceFieldNames = []string{"name", "title", "company", "email", "phone", "relationship"}

func (f ReferenceField) String() string { return fieldName(referenceFieldNames, int(f)) }

// ParseReferenceField converts a JSON field name to a ReferenceField.
func ParseReferenceField(name string) (ReferenceField, error) {
	i, err := parseField("references", referenceFieldNames, name)
	return ReferenceField(i), err
}

// Get returns the value of f in r.
func (f ReferenceField) Get(r *Reference) string {
	switch f {
	case ReferenceName:
		return r.Name
	case ReferenceTitle:
		return r.Title
	case ReferenceCompany:
		return r.Company
	case ReferenceEmail:
		return r.Email
	case ReferencePhone:
		return r.Phone
	case ReferenceRelationship:
		return r.Relationship
	}
	return ""
}

// Set assigns value to f in r.
func (f ReferenceField) Set(r *Reference, value string) {
	switch f {
	case ReferenceName:
		r.Name = value
	case ReferenceTitle:
		r.Title = value
	case ReferenceCompany:
		r.Company = value
	case ReferenceEmail:
		r.Email = value
	case ReferencePhone:
		r.Phone = value
	case ReferenceRelationship:
		r.Relationship = value
	}
}

// CustomField identifies a field of a CustomEntry.
type CustomField int

// Custom entry fields.
const (
	CustomTitle CustomField = iota
	CustomSubtitle
	CustomDate
	CustomDescription
)

// CustomFields lists every field of a CustomEntry.
var CustomFields = []CustomField{CustomTitle, CustomSubtitle, CustomDate, CustomDescription}

var customFieldNames = []string{"title", "subtitle", "date", "description"}

func (f CustomField) String() string { return fieldName(customFieldNames, int(f)) }

// ParseCustomField converts a JSON field name to a CustomField.
func ParseCustomField(name string) (CustomField, error) {
	i, err := parseField("custom", customFieldNames, name)
	return CustomField(i), err
}

// Get returns the value of f in c.
func (f CustomField) Get(c *CustomEntry) string {
	switch f {
	case CustomTitle:
		return c.Title
	case CustomSubtitle:
		return c.Subtitle
	case CustomDate:
		return c.Date
	case CustomDescription:
		return c.Description
	}
	return ""
}

// Set assigns value to f in c.
func (f CustomField) Set(c *CustomEntry, value string) {
	switch f {
	case CustomTitle:
		c.Title = value
	case CustomSubtitle:
		c.Subtitle = value
	case CustomDate:
		c.Date = value
	case CustomDescription:
		c.Description = value
	}
}

// UnknownFieldError is returned when a field name does not belong to a kind.
type UnknownFieldError struct {
	Kind  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown %s field: %q", e.Kind, e.Field)
}

func parseField(kind string, names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return -1, &UnknownFieldError{Kind: kind, Field: name}
}

func fieldName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("field(%d)", i)
	}
	return names[i]
}
