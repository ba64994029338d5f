package session

import (
	"fmt"
	"strconv"

	"github.com/jonathan/resume-builder/internal/types"
)

// fieldCurrent is the experience flag addressed through UpdateEntry.
const fieldCurrent = "current"

// AddEntry appends an empty entry to the collection of kind.
func (s *Session) AddEntry(kind types.Kind) (types.ID, error) {
	switch kind {
	case types.KindExperience:
		return s.AddExperience(), nil
	case types.KindEducation:
		return s.AddEducation(), nil
	case types.KindProjects:
		return s.AddProject(), nil
	case types.KindCertifications:
		return s.AddCertification(), nil
	case types.KindLanguages:
		return s.AddLanguage(), nil
	case types.KindAwards:
		return s.AddAward(), nil
	case types.KindReferences:
		return s.AddReference(), nil
	case types.KindCustom:
		return s.AddCustomItem(), nil
	}
	return "", fmt.Errorf("unknown collection %q", kind)
}

// UpdateEntry sets a field named by its JSON name. It is the entry point
// for outer surfaces that receive field names as strings; an unknown field
// is an error, an unknown id is not.
func (s *Session) UpdateEntry(kind types.Kind, id types.ID, field, value string) error {
	switch kind {
	case types.KindExperience:
		if field == fieldCurrent {
			current, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid value for current: %w", err)
			}
			s.SetExperienceCurrent(id, current)
			return nil
		}
		f, err := types.ParseExperienceField(field)
		if err != nil {
			return err
		}
		s.UpdateExperience(id, f, value)
	case types.KindEducation:
		f, err := types.ParseEducationField(field)
		if err != nil {
			return err
		}
		s.UpdateEducation(id, f, value)
	case types.KindProjects:
		f, err := types.ParseProjectField(field)
		if err != nil {
			return err
		}
		s.UpdateProject(id, f, value)
	case types.KindCertifications:
		f, err := types.ParseCertificationField(field)
		if err != nil {
			return err
		}
		s.UpdateCertification(id, f, value)
	case types.KindLanguages:
		f, err := types.ParseLanguageField(field)
		if err != nil {
			return err
		}
		s.UpdateLanguage(id, f, value)
	case types.KindAwards:
		f, err := types.ParseAwardField(field)
		if err != nil {
			return err
		}
		s.UpdateAward(id, f, value)
	case types.KindReferences:
		f, err := types.ParseReferenceField(field)
		if err != nil {
			return err
		}
		s.UpdateReference(id, f, value)
	case types.KindCustom:
		f, err := types.ParseCustomField(field)
		if err != nil {
			return err
		}
		s.UpdateCustomItem(id, f, value)
	default:
		return fmt.Errorf("unknown collection %q", kind)
	}
	return nil
}

// RemoveEntry removes an entry from the collection of kind.
func (s *Session) RemoveEntry(kind types.Kind, id types.ID) error {
	switch kind {
	case types.KindExperience:
		s.RemoveExperience(id)
	case types.KindEducation:
		s.RemoveEducation(id)
	case types.KindProjects:
		s.RemoveProject(id)
	case types.KindCertifications:
		s.RemoveCertification(id)
	case types.KindLanguages:
		s.RemoveLanguage(id)
	case types.KindAwards:
		s.RemoveAward(id)
	case types.KindReferences:
		s.RemoveReference(id)
	case types.KindCustom:
		s.RemoveCustomItem(id)
	default:
		return fmt.Errorf("unknown collection %q", kind)
	}
	return nil
}
