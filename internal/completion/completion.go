// Package completion estimates how complete a resume document is.
package completion

import (
	"math"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Expected field counts per entry. Education carries seven countable fields
// against six expected, so the final percentage is clamped.
const (
	personalFields      = 8
	experienceFields    = 6
	educationFields     = 6
	projectFields       = 7
	certificationFields = 6
	languageFields      = 2
	awardFields         = 4
	referenceFields     = 6
	customItemFields    = 4
)

// Percent returns the share of expected fields that are filled, rounded to
// an integer in [0, 100]. Identifiers and the experience current flag are
// never counted.
func Percent(doc *types.Document) int {
	if doc == nil {
		return 0
	}
	total := Total(doc)
	if total == 0 {
		return 0
	}
	p := int(math.Round(100 * float64(Filled(doc)) / float64(total)))
	return max(0, min(100, p))
}

// Total returns the number of fields the document is expected to have.
func Total(doc *types.Document) int {
	total := personalFields +
		len(doc.Experience)*experienceFields +
		len(doc.Education)*educationFields +
		len(doc.Projects)*projectFields +
		len(doc.Certifications)*certificationFields +
		len(doc.Languages)*languageFields +
		len(doc.Awards)*awardFields +
		len(doc.References)*referenceFields +
		len(doc.CustomSection.Items)*customItemFields
	// skills collapse to one countable unit
	if len(doc.Skills) > 0 {
		total++
	}
	if filled(doc.CustomSection.Title) {
		total++
	}
	return total
}

// Filled returns the number of non-blank fields in the document.
func Filled(doc *types.Document) int {
	n := 0
	for _, f := range types.PersonalFields {
		n += count(f.Get(&doc.Personal))
	}
	for i := range doc.Experience {
		for _, f := range types.ExperienceFields {
			n += count(f.Get(&doc.Experience[i]))
		}
	}
	for i := range doc.Education {
		for _, f := range types.EducationFields {
			n += count(f.Get(&doc.Education[i]))
		}
	}
	if len(doc.Skills) > 0 {
		n++
	}
	for i := range doc.Projects {
		for _, f := range types.ProjectFields {
			n += count(f.Get(&doc.Projects[i]))
		}
	}
	for i := range doc.Certifications {
		for _, f := range types.CertificationFields {
			n += count(f.Get(&doc.Certifications[i]))
		}
	}
	for i := range doc.Languages {
		for _, f := range types.LanguageFields {
			n += count(f.Get(&doc.Languages[i]))
		}
	}
	for i := range doc.Awards {
		for _, f := range types.AwardFields {
			n += count(f.Get(&doc.Awards[i]))
		}
	}
	for i := range doc.References {
		for _, f := range types.ReferenceFields {
			n += count(f.Get(&doc.References[i]))
		}
	}
	n += count(doc.CustomSection.Title)
	for i := range doc.CustomSection.Items {
		for _, f := range types.CustomFields {
			n += count(f.Get(&doc.CustomSection.Items[i]))
		}
	}
	return n
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

func count(s string) int {
	if filled(s) {
		return 1
	}
	return 0
}
