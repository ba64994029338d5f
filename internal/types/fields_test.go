package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	assert.Equal(t, TemplateClassic, ParseTemplate("classic"))
	assert.Equal(t, TemplateMinimal, ParseTemplate(" Minimal "))
	assert.Equal(t, TemplateModern, ParseTemplate(""))
	assert.Equal(t, TemplateModern, ParseTemplate("baroque"))
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeRose, ParseTheme("rose"))
	assert.Equal(t, ThemeDarkBlue, ParseTheme("neon"))
	assert.Equal(t, ThemeDarkBlue, ParseTheme(""))
}

func TestProficiencyLabel(t *testing.T) {
	assert.Equal(t, "Fluent", Fluent.Label())
	assert.Equal(t, "Native", Native.Label())
	assert.Equal(t, "", Proficiency("").Label())

	p, ok := ParseProficiency("ADVANCED")
	assert.True(t, ok)
	assert.Equal(t, Advanced, p)

	_, ok = ParseProficiency("expert")
	assert.False(t, ok)
}

func TestParseFieldNames_RoundTrip(t *testing.T) {
	for _, f := range ExperienceFields {
		parsed, err := ParseExperienceField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	for _, f := range EducationFields {
		parsed, err := ParseEducationField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	for _, f := range PersonalFields {
		parsed, err := ParsePersonalField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestParseField_Unknown(t *testing.T) {
	_, err := ParseExperienceField("salary")
	require.Error(t, err)
	var fieldErr *UnknownFieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "experience", fieldErr.Kind)

	// current is a boolean and is not addressable as a string field
	_, err = ParseExperienceField("current")
	assert.Error(t, err)
}

func TestFieldSetGet(t *testing.T) {
	var e Experience
	for _, f := range ExperienceFields {
		f.Set(&e, f.String()+"-value")
	}
	for _, f := range ExperienceFields {
		assert.Equal(t, f.String()+"-value", f.Get(&e))
	}

	var l Language
	assert.True(t, LanguageProficiency.Set(&l, "native"))
	assert.Equal(t, Native, l.Proficiency)
	assert.False(t, LanguageProficiency.Set(&l, "expert"))
	assert.Equal(t, Native, l.Proficiency)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("awards")
	require.NoError(t, err)
	assert.Equal(t, KindAwards, k)

	_, err = ParseKind("hobbies")
	assert.Error(t, err)
}
