package session

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Operations addressing a missing identifier are silent no-ops: the entry
// may already have been removed by an earlier call.

// mutateEntry applies fn and commits only when it reports a change.
func (s *Session) mutateEntry(fn func() bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !fn() {
		return
	}
	s.revision++
	s.refreshLocked()
}

// add appends a fresh entry and commits. It returns the new identifier.
func add[T any](s *Session, list func(*types.Document) *[]T, newEntry func(types.ID) T) types.ID {
	id := types.NewID()
	s.mutate(func() {
		l := list(s.doc)
		*l = append(*l, newEntry(id))
	})
	return id
}

func find[T any](list []T, id types.ID, idOf func(*T) types.ID) *T {
	for i := range list {
		if idOf(&list[i]) == id {
			return &list[i]
		}
	}
	return nil
}

func remove[T any](list *[]T, id types.ID, idOf func(*T) types.ID) bool {
	for i := range *list {
		if idOf(&(*list)[i]) == id {
			*list = append((*list)[:i:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

func experiences(d *types.Document) *[]types.Experience { return &d.Experience }
func educations(d *types.Document) *[]types.Education { return &d.Education }
func projects(d *types.Document) *[]types.Project { return &d.Projects }
func certifications(d *types.Document) *[]types.Certification { return &d.Certifications }
func languages(d *types.Document) *[]types.Language { return &d.Languages }
func awards(d *types.Document) *[]types.Award { return &d.Awards }
func references(d *types.Document) *[]types.Reference { return &d.References }
func customItems(d *types.Document) *[]types.CustomEntry { return &d.CustomSection.Items }

func experienceID(e *types.Experience) types.ID { return e.ID }
func educationID(e *types.Education) types.ID { return e.ID }
func projectID(p *types.Project) types.ID { return p.ID }
func certificationID(c *types.Certification) types.ID { return c.ID }
func languageID(l *types.Language) types.ID { return l.ID }
func awardID(a *types.Award) types.ID { return a.ID }
func referenceID(r *types.Reference) types.ID { return r.ID }
func customID(c *types.CustomEntry) types.ID { return c.ID }

// AddExperience appends an empty experience entry.
func (s *Session) AddExperience() types.ID {
	return add(s, experiences, func(id types.ID) types.Experience { return types.Experience{ID: id} })
}

// UpdateExperience sets one field of an experience entry. Setting a
// non-empty end date on a current entry makes it no longer current.
func (s *Session) UpdateExperience(id types.ID, field types.ExperienceField, value string) {
	s.mutateEntry(func() bool {
		e := find(s.doc.Experience, id, experienceID)
		if e == nil {
			return false
		}
		field.Set(e, value)
		if field == types.ExperienceEndDate && strings.TrimSpace(value) != "" {
			e.Current = false
		}
		return true
	})
}

// SetExperienceCurrent marks an entry as the current position, which
// clears its end date.
func (s *Session) SetExperienceCurrent(id types.ID, current bool) {
	s.mutateEntry(func() bool {
		e := find(s.doc.Experience, id, experienceID)
		if e == nil {
			return false
		}
		e.Current = current
		if current {
			e.EndDate = ""
		}
		return true
	})
}

// RemoveExperience removes an experience entry.
func (s *Session) RemoveExperience(id types.ID) {
	s.mutateEntry(func() bool { return remove(&s.doc.Experience, id, experienceID) })
}

// AddEducation appends an empty education entry.
func (s *Session) AddEducation() types.ID {
	return add(s, educations, func(id types.ID) types.Education { return types.Education{ID: id} })
}

// UpdateEducation sets one field of an education entry.
func (s *Session) UpdateEducation(id types.ID, field types.EducationField, value string) {
	s.mutateEntry(func() bool {
		e := find(s.doc.Education, id, educationID)
		if e == nil {
			return false
		}
		field.Set(e, value)
		return true
	})
}

// RemoveEducation removes an education entry.
func (s *Session) RemoveEducation(id types.ID) {
	s.mutateEntry(func() bool { return remove(&s.doc.Education, id, educationID) })
}

// AddProject appends an empty project.
func (s *Session) AddProject() types.ID {
	return add(s, projects, func(id types.ID) types.Project { return types.Project{ID: id} })
}

// UpdateProject sets one field of a project.
func (s *Session) UpdateProject(id types.ID, field types.ProjectField, value string) {
	s.mutateEntry(func() bool {
		p := find(s.doc.Projects, id, projectID)
		if p == nil {
			return false
		}
		field.Set(p, value)
		return true
	})
}

// RemoveProject removes a project.
func (s *Session) RemoveProject(id types.ID) {
	s.mutateEntry(func() bool { return remove(&s.doc.Projects, id, projectID) })
}

// AddCertification appends an empty certification.
func (s *Session) AddCertification() types.ID {
	return add(s, certifications, func(id types.ID) types.Certification { return types.Certification{ID: id} })
}

// UpdateCertification sets one field of a certification.
func (s *Session) UpdateCertification(id types.ID, field types.CertificationField, value string) {
	s.mutateEntry(func() bool {
		c := find(s.doc.Certifications, id, certificationID)
		if c == nil {
			return false
		}
		field.Set(c, value)
		return true
	})
}

// RemoveCertification removes a certification.
func (s *Session) RemoveCertification(id types.ID) {
	s.mutateEntry(func() bool { return remove(&s.doc.Certifications, id, certificationID) })
}

// AddLanguage appends a language at beginner level.
func (s *Session) AddLanguage() types.ID {
	return add(s, languages, func(id types.ID) types.Language {
		return types.Language{ID: id, Proficiency: types.Beginner}
	})
}

// UpdateLanguage sets one field of a language. Unknown proficiency levels
// are ignored.
func (s *Session) UpdateLanguage(id types.ID, field types.LanguageField, value string) {
	s.mutateEntry(func() bool {
		l := find(s.doc.Languages, id, languageID)
		if l == nil {
			return false
		}
		return field.Set(l, value)
	})
}

// RemoveLanguage removes a language.
func (s *Session) RemoveLanguage(id types.ID) {
	s.mutateEntry(func() bool { return remove(&s.doc.Languages, id, languageID) })
}

// AddAward appends an empty award.
func (s *Session) AddAward() types.ID {
	return add(s, awards, func(id types.ID) types.Award { return types.Award{ID: id} })
}

// UpdateAward sets one field of an award.
func (s *Session) UpdateAward(id types.ID, field types.AwardField, value string) {
	s.mutateEntry(func() bool {
		a := find(s.doc.Awards, id, awardID)
		if a == nil {
			return false
		}
		field.Set(a, value)
		return true
	})
}

// RemoveAward removes an award.
func (s *Session) RemoveAward(id types.ID) {
	s.mutateEntry(func() bool { return remove(&s.doc.Awards, id, awardID) })
}

// AddReference appends an empty reference.
func (s *Session) AddReference() types.ID {
	return add(s, references, func(id types.ID) types.Reference { return types.Reference{ID: id} })
}

// UpdateReference sets one field of a reference.
func (s *Session) UpdateReference(id types.ID, field types.ReferenceField, value string) {
	s.mutateEntry(func() bool {
		r := find(s.doc.References, id, referenceID)
		if r == nil {
			return false
		}
		field.Set(r, value)
		return true
	})
}

// RemoveReference removes a reference.
func (s *Session) RemoveReference(id types.ID) {
	s.mutateEntry(func() bool { return remove(&s.doc.References, id, referenceID) })
}

// AddCustomItem appends an empty item to the custom section.
func (s *Session) AddCustomItem() types.ID {
	return add(s, customItems, func(id types.ID) types.CustomEntry { return types.CustomEntry{ID: id} })
}

// UpdateCustomItem sets one field of a custom section item.
func (s *Session) UpdateCustomItem(id types.ID, field types.CustomField, value string) {
	s.mutateEntry(func() bool {
		c := find(s.doc.CustomSection.Items, id, customID)
		if c == nil {
			return false
		}
		field.Set(c, value)
		return true
	})
}

// RemoveCustomItem removes a custom section item.
func (s *Session) RemoveCustomItem(id types.ID) {
	s.mutateEntry(func() bool { return remove(&s.doc.CustomSection.Items, id, customID) })
}

// AddSkill trims value and appends it unless it is empty or already present.
func (s *Session) AddSkill(value string) {
	value = strings.TrimSpace(value)
	s.mutateEntry(func() bool {
		if value == "" {
			return false
		}
		for _, existing := range s.doc.Skills {
			if existing == value {
				return false
			}
		}
		s.doc.Skills = append(s.doc.Skills, value)
		return true
	})
}

// RemoveSkill removes skills exactly equal to value.
func (s *Session) RemoveSkill(value string) {
	s.mutateEntry(func() bool {
		kept := make([]string, 0, len(s.doc.Skills))
		for _, existing := range s.doc.Skills {
			if existing != value {
				kept = append(kept, existing)
			}
		}
		if len(kept) == len(s.doc.Skills) {
			return false
		}
		s.doc.Skills = kept
		return true
	})
}
