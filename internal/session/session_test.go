package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	kind    string
	percent int
	html    string
}

type recordingObserver struct {
	events []event
}

func (o *recordingObserver) OnCompletion(percent int) {
	o.events = append(o.events, event{kind: "completion", percent: percent})
}

func (o *recordingObserver) OnPreview(html string) {
	o.events = append(o.events, event{kind: "preview", html: html})
}

func TestNew_EmptyState(t *testing.T) {
	s := New()

	assert.Equal(t, 0, s.Completion())
	assert.Contains(t, s.Preview(), "Start Building Your Resume")
	assert.Equal(t, types.TemplateModern, s.Template())
	assert.Equal(t, types.ThemeDarkBlue, s.Theme())
}

func TestSession_AddAndUpdateExperience(t *testing.T) {
	s := New()

	id := s.AddExperience()
	s.UpdateExperience(id, types.ExperienceJobTitle, "Engineer")
	s.UpdateExperience(id, types.ExperienceCompany, "Acme")

	assert.Contains(t, s.Preview(), "Engineer")
	assert.Contains(t, s.Preview(), "Acme")
	// 2 of 8 + 6 fields
	assert.Equal(t, 14, s.Completion())
}

func TestSession_MissingIDIsNoOp(t *testing.T) {
	s := New()
	s.AddExperience()
	before := s.Snapshot()

	s.UpdateExperience("missing", types.ExperienceJobTitle, "Ghost")
	s.RemoveExperience("missing")
	s.SetExperienceCurrent("missing", true)
	s.UpdateLanguage("missing", types.LanguageName, "French")

	after := s.Snapshot()
	assert.Equal(t, before, after)
}

func TestSession_RemoveAfterRemoveIsNoOp(t *testing.T) {
	s := New()
	id := s.AddProject()
	s.RemoveProject(id)
	s.RemoveProject(id)
	s.UpdateProject(id, types.ProjectName, "late")

	assert.Empty(t, s.Snapshot().Document.Projects)
}

func TestSession_CurrentClearsEndDate(t *testing.T) {
	s := New()
	id := s.AddExperience()
	s.UpdateExperience(id, types.ExperienceStartDate, "2020-01")
	s.UpdateExperience(id, types.ExperienceEndDate, "2022-03")

	s.SetExperienceCurrent(id, true)
	e := s.Snapshot().Document.Experience[0]
	assert.True(t, e.Current)
	assert.Empty(t, e.EndDate)

	s.UpdateExperience(id, types.ExperienceJobTitle, "Engineer")
	assert.Contains(t, s.Preview(), "Jan 2020 - Present")

	s.UpdateExperience(id, types.ExperienceEndDate, "2023-05")
	e = s.Snapshot().Document.Experience[0]
	assert.False(t, e.Current)
	assert.Equal(t, "2023-05", e.EndDate)
}

func TestSession_Skills(t *testing.T) {
	s := New()
	s.AddSkill("  Go ")
	s.AddSkill("Go")
	s.AddSkill("   ")
	s.AddSkill("SQL")

	assert.Equal(t, []string{"Go", "SQL"}, s.Snapshot().Document.Skills)

	s.RemoveSkill("go")
	assert.Equal(t, []string{"Go", "SQL"}, s.Snapshot().Document.Skills)

	s.RemoveSkill("Go")
	assert.Equal(t, []string{"SQL"}, s.Snapshot().Document.Skills)
}

func TestSession_LanguageProficiency(t *testing.T) {
	s := New()
	id := s.AddLanguage()
	assert.Equal(t, types.Beginner, s.Snapshot().Document.Languages[0].Proficiency)

	s.UpdateLanguage(id, types.LanguageName, "French")
	s.UpdateLanguage(id, types.LanguageProficiency, "fluent")
	s.UpdateLanguage(id, types.LanguageProficiency, "wizard")

	assert.Equal(t, types.Fluent, s.Snapshot().Document.Languages[0].Proficiency)
	assert.Contains(t, s.Preview(), "Fluent")
}

func TestSession_IDsAreDistinct(t *testing.T) {
	s := New()
	seen := make(map[types.ID]bool)
	for i := 0; i < 50; i++ {
		id := s.AddAward()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestSession_CustomTitleWithoutItems(t *testing.T) {
	s := New()
	s.SetCustomSectionTitle("Volunteering")

	assert.NotContains(t, s.Preview(), "Volunteering")
	assert.NotContains(t, s.Preview(), "Start Building Your Resume")

	id := s.AddCustomItem()
	s.UpdateCustomItem(id, types.CustomTitle, "Mentor")
	assert.Contains(t, s.Preview(), "Volunteering")
}

func TestSession_ObserverOrder(t *testing.T) {
	s := New()
	obs := &recordingObserver{}
	s.Subscribe(obs)

	s.SetPersonalField(types.PersonalFullName, "Jane Doe")

	require.Len(t, obs.events, 2)
	assert.Equal(t, "completion", obs.events[0].kind)
	assert.Equal(t, 13, obs.events[0].percent)
	assert.Equal(t, "preview", obs.events[1].kind)
	assert.Contains(t, obs.events[1].html, "Jane Doe")
	assert.Equal(t, s.Preview(), obs.events[1].html)
}

func TestSession_NoNotificationForNoOp(t *testing.T) {
	s := New()
	obs := &recordingObserver{}
	s.Subscribe(obs)
	rev := s.Revision()

	s.AddSkill("")
	s.RemoveAward("missing")

	assert.Empty(t, obs.events)
	assert.Equal(t, rev, s.Revision())
}

func TestSession_SnapshotIsIsolated(t *testing.T) {
	s := New()
	s.AddSkill("Go")

	snap := s.Snapshot()
	snap.Document.Skills[0] = "changed"
	snap.Document.Personal.FullName = "Mallory"

	assert.Equal(t, []string{"Go"}, s.Snapshot().Document.Skills)
	assert.Empty(t, s.Snapshot().Document.Personal.FullName)
}

func TestSession_TemplateAndTheme(t *testing.T) {
	s := New()
	s.SetPersonalField(types.PersonalFullName, "Jane")

	s.SelectTemplate("classic")
	s.SelectTheme("rose")
	assert.Equal(t, types.TemplateClassic, s.Template())
	assert.Equal(t, types.ThemeRose, s.Theme())
	assert.Contains(t, s.Preview(), "resume-classic")

	s.SelectTemplate("fancy")
	s.SelectTheme("neon")
	assert.Equal(t, types.TemplateModern, s.Template())
	assert.Equal(t, types.ThemeDarkBlue, s.Theme())
}

func TestSession_ClearKeepsStyle(t *testing.T) {
	s := New()
	s.SelectTemplate("minimal")
	s.SetPersonalField(types.PersonalFullName, "Jane")
	s.AddExperience()

	s.Clear()

	assert.False(t, s.Snapshot().Document.HasContent())
	assert.Equal(t, 0, s.Completion())
	assert.Equal(t, types.TemplateMinimal, s.Template())
	assert.Contains(t, s.Preview(), "Start Building Your Resume")
}

func TestSession_RestoreNormalizes(t *testing.T) {
	doc := types.NewDocument()
	doc.Personal.FullName = "Jane"
	doc.Experience = []types.Experience{{JobTitle: "Engineer", Current: true, EndDate: "2020-01"}}
	doc.Skills = []string{"Go", "Go"}

	s := New()
	s.Restore(doc, "professional", "unknown")

	snap := s.Snapshot()
	assert.Equal(t, types.TemplateProfessional, snap.Template)
	assert.Equal(t, types.ThemeDarkBlue, snap.Theme)
	assert.NotEmpty(t, snap.Document.Experience[0].ID)
	assert.Empty(t, snap.Document.Experience[0].EndDate)
	assert.Equal(t, []string{"Go"}, snap.Document.Skills)

	// the caller's document is not adopted
	doc.Personal.FullName = "changed"
	assert.Equal(t, "Jane", s.Snapshot().Document.Personal.FullName)
}

func TestSession_UpdateEntryDispatch(t *testing.T) {
	s := New()

	id, err := s.AddEntry(types.KindExperience)
	require.NoError(t, err)

	require.NoError(t, s.UpdateEntry(types.KindExperience, id, "jobTitle", "Engineer"))
	require.NoError(t, s.UpdateEntry(types.KindExperience, id, "current", "true"))
	assert.Error(t, s.UpdateEntry(types.KindExperience, id, "current", "maybe"))

	err = s.UpdateEntry(types.KindExperience, id, "salary", "lots")
	var unknown *types.UnknownFieldError
	assert.ErrorAs(t, err, &unknown)

	// unknown ids are not errors
	assert.NoError(t, s.UpdateEntry(types.KindEducation, "missing", "degree", "BSc"))

	e := s.Snapshot().Document.Experience[0]
	assert.Equal(t, "Engineer", e.JobTitle)
	assert.True(t, e.Current)

	require.NoError(t, s.RemoveEntry(types.KindExperience, id))
	assert.Empty(t, s.Snapshot().Document.Experience)

	_, err = s.AddEntry("hobbies")
	assert.Error(t, err)
}

func TestSession_DispatchCoversEveryKind(t *testing.T) {
	s := New()
	for _, kind := range types.Kinds {
		id, err := s.AddEntry(kind)
		require.NoError(t, err, kind)
		require.NoError(t, s.RemoveEntry(kind, id), kind)
	}
	assert.False(t, s.Snapshot().Document.HasContent())
}

func TestSession_ConcurrentMutations(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddSkill(fmt.Sprintf("skill-%d", i))
			_ = s.Snapshot()
			_ = s.Preview()
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Document.Skills, 20)
	assert.Equal(t, uint64(20), s.Revision())
}
