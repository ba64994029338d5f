package types

import "fmt"

// Kind names a repeatable collection of the document.
type Kind string

// Collection kinds, named after their JSON keys.
const (
	KindExperience     Kind = "experience"
	KindEducation      Kind = "education"
	KindProjects       Kind = "projects"
	KindCertifications Kind = "certifications"
	KindLanguages      Kind = "languages"
	KindAwards         Kind = "awards"
	KindReferences     Kind = "references"
	KindCustom         Kind = "custom"
)

// Kinds lists every collection kind in render order.
var Kinds = []Kind{
	KindExperience, KindEducation, KindProjects, KindCertifications,
	KindLanguages, KindAwards, KindReferences, KindCustom,
}

// ParseKind converts a collection name to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown collection: %q", name)
}
