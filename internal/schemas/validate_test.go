package schemas

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/envelope"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["person"],
	"properties": {
		"person": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string"}
			}
		}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func exportedEnvelope(t *testing.T) []byte {
	t.Helper()
	doc := types.NewDocument()
	doc.Personal.FullName = "Jane Doe"
	doc.Skills = []string{"Go"}
	doc.Languages = []types.Language{{ID: types.NewID(), Name: "French", Proficiency: types.Fluent}}
	doc.Experience = []types.Experience{{ID: types.NewID(), JobTitle: "Engineer", Current: true}}

	data, err := envelope.Marshal(envelope.Serialize(doc, types.TemplateClassic, types.ThemeRose, time.Now()))
	require.NoError(t, err)
	return data
}

func TestValidateEnvelope_Exported(t *testing.T) {
	assert.NoError(t, ValidateEnvelope(exportedEnvelope(t)))
}

func TestValidateEnvelope_LegacyNumericIDs(t *testing.T) {
	data := `{
		"metadata": {"exportDate": "2024-01-01T00:00:00Z", "version": "1.0", "application": "Interactive Resume Builder"},
		"template": "modern",
		"theme": "dark-blue",
		"data": {"experience": [{"id": 1700000000000, "jobTitle": "Engineer"}]}
	}`
	assert.NoError(t, ValidateEnvelope([]byte(data)))
}

func TestValidateEnvelope_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{
			name:  "missing metadata",
			data:  `{"template": "modern", "theme": "rose", "data": {}}`,
			field: "(root)",
		},
		{
			name:  "unknown template",
			data:  `{"metadata": {"exportDate": "2024-01-01T00:00:00Z", "version": "1.0", "application": "x"}, "template": "fancy", "theme": "rose", "data": {}}`,
			field: "template",
		},
		{
			name:  "skills not strings",
			data:  `{"metadata": {"exportDate": "2024-01-01T00:00:00Z", "version": "1.0", "application": "x"}, "template": "modern", "theme": "rose", "data": {"skills": [1, 2]}}`,
			field: "data.skills.0",
		},
		{
			name:  "not json",
			data:  `{broken`,
			field: "(root)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEnvelope([]byte(tt.data))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateEnvelopeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "resume.json", string(exportedEnvelope(t)))
	assert.NoError(t, ValidateEnvelopeFile(path))

	err := ValidateEnvelopeFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	valid := writeFile(t, dir, "valid.json", `{"person": {"name": "Jane"}}`)
	invalid := writeFile(t, dir, "invalid.json", `{"person": {"name": 3}}`)

	assert.NoError(t, ValidateJSON(schemaPath, valid))

	err := ValidateJSON(schemaPath, invalid)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "person.name", validationErr.Errors[0].Field)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)

	err := ValidateJSON(filepath.Join(dir, "nope.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSONString_NestedField(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"person": {}}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "person", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. name: is required")
	assert.Contains(t, msg, "2. age: must be a number")
}
