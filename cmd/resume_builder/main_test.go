package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/envelope"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags clears flag variables left over from earlier commands.
func resetFlags() {
	configPath, verbose = "", false
	servePort = 0
	renderInput, renderOutput, renderTemplate, renderTheme = "", "resume.html", "", ""
	exportInput, exportOutDir, exportEngine, exportTemplate, exportTheme = "", "", "", "", ""
	progressInput = ""
	validateSchema = ""
}

// run executes the CLI in-process against a temporary store.
func run(t *testing.T, storeDir string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Setenv(config.EnvStoreDir, storeDir)
	t.Setenv(config.EnvChromePath, "")
	t.Setenv(config.EnvPort, "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeEnvelope(t *testing.T, dir string) string {
	t.Helper()
	doc := types.NewDocument()
	doc.Personal.FullName = "Jane Doe"
	doc.Personal.Email = "jane@example.com"
	doc.Skills = []string{"Go", "SQL"}
	doc.Experience = []types.Experience{{ID: types.NewID(), JobTitle: "Engineer", Company: "Acme", StartDate: "2020-01", Current: true}}

	data, err := envelope.Marshal(envelope.Serialize(doc, types.TemplateClassic, types.ThemeEmerald, time.Now()))
	require.NoError(t, err)
	path := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func storedSession(t *testing.T, storeDir string) *session.Session {
	t.Helper()
	store, err := storage.NewFileStore(storeDir)
	require.NoError(t, err)
	sess := session.New()
	require.NoError(t, storage.Load(context.Background(), store, sess))
	return sess
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	storeDir := filepath.Join(dir, "store")

	out, err := run(t, storeDir, "import", writeEnvelope(t, dir))
	require.NoError(t, err)
	assert.Contains(t, out, "Imported")

	sess := storedSession(t, storeDir)
	assert.Equal(t, "Jane Doe", sess.Snapshot().Document.Personal.FullName)
	assert.Equal(t, types.TemplateClassic, sess.Template())
	assert.Equal(t, types.ThemeEmerald, sess.Theme())
}

func TestImportCommand_MissingArgument(t *testing.T) {
	_, err := run(t, t.TempDir(), "import")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "preview.html")

	_, err := run(t, filepath.Join(dir, "store"), "render", "--input", writeEnvelope(t, dir), "--out", out, "--template", "minimal")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	page := string(data)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "resume-minimal")
	assert.Contains(t, page, "Jane Doe")
}

func TestExportCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	storeDir := filepath.Join(dir, "store")
	outDir := filepath.Join(dir, "out")

	_, err := run(t, storeDir, "import", writeEnvelope(t, dir))
	require.NoError(t, err)

	out, err := run(t, storeDir, "export", "--out-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Jane_Doe_Resume_Data.json")

	data, err := os.ReadFile(filepath.Join(outDir, "Jane_Doe_Resume_Data.json"))
	require.NoError(t, err)
	doc, tpl, _ := envelope.Deserialize(data)
	assert.Equal(t, "Jane Doe", doc.Personal.FullName)
	assert.Equal(t, types.TemplateClassic, tpl)
}

func TestPDFCommand(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	_, err := run(t, filepath.Join(dir, "store"), "pdf", "--input", writeEnvelope(t, dir), "--out-dir", outDir, "--engine", "paint")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "Jane_Doe_Resume.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFCommand_UnknownEngine(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, filepath.Join(dir, "store"), "pdf", "--engine", "latex", "--out-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestProgressCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, filepath.Join(dir, "store"), "progress", "--input", writeEnvelope(t, dir))
	require.NoError(t, err)

	assert.Contains(t, out, "RESUME PROGRESS")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "RESUME OUTLINE")
	assert.Contains(t, out, "Work Experience")
}

func TestProgressCommand_EmptyStore(t *testing.T) {
	out, err := run(t, filepath.Join(t.TempDir(), "store"), "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "0%")
	assert.Contains(t, out, "Nothing to render yet")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "validate", writeEnvelope(t, dir))
	require.NoError(t, err)
	assert.Contains(t, out, "ENVELOPE IS VALID")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"template":"fancy"}`), 0o644))
	out, err = run(t, dir, "validate", bad)
	require.Error(t, err)
	assert.Contains(t, out, "SCHEMA VIOLATIONS")
	assert.Contains(t, err.Error(), "does not match the envelope schema")
}

func TestValidateCommand_SchemaFlag(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "named.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{
		"type": "object",
		"required": ["data"],
		"properties": {"data": {"type": "object", "required": ["personal"]}}
	}`), 0o644))

	out, err := run(t, dir, "validate", "--schema", schemaPath, writeEnvelope(t, dir))
	require.NoError(t, err)
	assert.Contains(t, out, "ENVELOPE IS VALID")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"data":{}}`), 0o644))
	out, err = run(t, dir, "validate", "--schema", schemaPath, bad)
	require.Error(t, err)
	assert.Contains(t, out, "SCHEMA VIOLATIONS")
	assert.Contains(t, err.Error(), "does not match "+schemaPath)
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"pdf_engine":"latex"}`), 0o644))

	_, err := run(t, filepath.Join(dir, "store"), "progress", "--config", cfgPath)
	assert.Error(t, err)
}
