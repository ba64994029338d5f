package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/envelope"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingEngine holds a PDF export open until released.
type blockingEngine struct {
	started chan struct{}
	release chan struct{}
}

func (e *blockingEngine) Render(ctx context.Context, _ *types.Document, _ types.Template, _ types.Theme) ([]byte, error) {
	close(e.started)
	<-e.release
	return []byte("%PDF-blocked"), nil
}

func newTestServer(t *testing.T, engine pdf.Engine) (*Server, *session.Session) {
	t.Helper()
	sess := session.New()
	return New(Config{Port: 0}, sess, export.New(engine)), sess
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) StateResponse {
	t.Helper()
	var state StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	rec := do(t, srv.Handler(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	rec := do(t, srv.Handler(), http.MethodOptions, "/experience", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestHandleSetPersonal(t *testing.T) {
	srv, sess := newTestServer(t, pdf.PaintEngine{})
	h := srv.Handler()

	rec := do(t, h, http.MethodPut, "/personal/fullName", `{"value":"Jane Doe"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, "Jane Doe", state.Data.Personal.FullName)
	assert.Equal(t, 13, state.Completion)
	assert.Equal(t, "Jane Doe", sess.Snapshot().Document.Personal.FullName)

	rec = do(t, h, http.MethodPut, "/personal/age", `{"value":"40"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, "/personal/email", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntryLifecycle(t *testing.T) {
	srv, sess := newTestServer(t, pdf.PaintEngine{})
	h := srv.Handler()

	rec := do(t, h, http.MethodPost, "/experience", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created EntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, types.KindExperience, created.Kind)
	require.NotEmpty(t, created.ID)

	path := "/experience/" + string(created.ID)
	rec = do(t, h, http.MethodPatch, path, `{"field":"jobTitle","value":"Engineer"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPatch, path, `{"field":"current","value":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	exp := decodeState(t, rec).Data.Experience[0]
	assert.Equal(t, "Engineer", exp.JobTitle)
	assert.True(t, exp.Current)

	rec = do(t, h, http.MethodPatch, path, `{"field":"current","value":"maybe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, path, `{"field":"salary","value":"lots"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, path, `{"value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown ids are silently ignored
	rec = do(t, h, http.MethodPatch, "/experience/missing", `{"field":"jobTitle","value":"Ghost"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, sess.Snapshot().Document.Experience)
}

func TestUnknownCollection(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	h := srv.Handler()

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/hobbies", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPatch, "/hobbies/1", `{"field":"x","value":"y"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/hobbies/1", "").Code)
}

func TestEveryCollectionIsAddressable(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	h := srv.Handler()

	for _, kind := range types.Kinds {
		rec := do(t, h, http.MethodPost, "/"+string(kind), "")
		assert.Equal(t, http.StatusCreated, rec.Code, kind)
	}
}

func TestSkills(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	h := srv.Handler()

	do(t, h, http.MethodPost, "/skills", `{"value":"Go"}`)
	do(t, h, http.MethodPost, "/skills", `{"value":"Go"}`)
	rec := do(t, h, http.MethodPost, "/skills", `{"value":"Distributed Systems"}`)
	assert.Equal(t, []string{"Go", "Distributed Systems"}, decodeState(t, rec).Data.Skills)

	rec = do(t, h, http.MethodDelete, "/skills/Distributed%20Systems", "")
	assert.Equal(t, []string{"Go"}, decodeState(t, rec).Data.Skills)
}

func TestCustomTitleAndClear(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	h := srv.Handler()

	rec := do(t, h, http.MethodPut, "/custom/title", `{"value":"Volunteering"}`)
	assert.Equal(t, "Volunteering", decodeState(t, rec).Data.CustomSection.Title)

	do(t, h, http.MethodPut, "/template/minimal", "")
	rec = do(t, h, http.MethodDelete, "/document", "")
	state := decodeState(t, rec)
	assert.Empty(t, state.Data.CustomSection.Title)
	assert.Equal(t, types.TemplateMinimal, state.Template)
}

func TestTemplateAndTheme(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	h := srv.Handler()

	rec := do(t, h, http.MethodPut, "/template/creative", "")
	assert.Equal(t, types.TemplateCreative, decodeState(t, rec).Template)

	rec = do(t, h, http.MethodPut, "/theme/emerald", "")
	assert.Equal(t, types.ThemeEmerald, decodeState(t, rec).Theme)

	rec = do(t, h, http.MethodPut, "/theme/neon", "")
	assert.Equal(t, types.ThemeDarkBlue, decodeState(t, rec).Theme)
}

func TestHandlePreview(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	h := srv.Handler()

	do(t, h, http.MethodPut, "/personal/fullName", `{"value":"<Jane>"}`)
	rec := do(t, h, http.MethodGet, "/preview", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
	assert.Contains(t, rec.Body.String(), "&lt;Jane&gt;")
}

func TestHandleImport(t *testing.T) {
	srv, sess := newTestServer(t, pdf.PaintEngine{})

	doc := types.NewDocument()
	doc.Personal.FullName = "Imported"
	doc.Skills = []string{"Go"}
	body, err := envelope.Marshal(envelope.Serialize(doc, types.TemplateProfessional, types.ThemePurple, time.Now()))
	require.NoError(t, err)

	rec := do(t, srv.Handler(), http.MethodPost, "/import", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, types.TemplateProfessional, resp.Template)
	assert.Equal(t, "Imported", sess.Snapshot().Document.Personal.FullName)
	assert.Equal(t, types.ThemePurple, sess.Theme())
}

func TestHandleImport_WarnsButImports(t *testing.T) {
	srv, sess := newTestServer(t, pdf.PaintEngine{})

	rec := do(t, srv.Handler(), http.MethodPost, "/import", `{"template":"fancy","data":{"personal":{"fullName":"Partial"},"skills":[1,"Go"]}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Warnings)
	assert.Equal(t, types.TemplateModern, resp.Template)
	assert.Equal(t, []string{"Go"}, sess.Snapshot().Document.Skills)
	assert.Equal(t, "Partial", sess.Snapshot().Document.Personal.FullName)
}

func TestHandleExport_JSON(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	h := srv.Handler()
	do(t, h, http.MethodPut, "/personal/fullName", `{"value":"Jane Doe"}`)

	rec := do(t, h, http.MethodGet, "/export/json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Jane_Doe_Resume_Data.json"`, rec.Header().Get("Content-Disposition"))

	doc, _, _ := envelope.Deserialize(rec.Body.Bytes())
	assert.Equal(t, "Jane Doe", doc.Personal.FullName)
}

func TestHandleExport_PDF(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	rec := do(t, srv.Handler(), http.MethodGet, "/export/pdf", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Resume.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestHandleExport_UnknownFormat(t *testing.T) {
	srv, _ := newTestServer(t, pdf.PaintEngine{})
	rec := do(t, srv.Handler(), http.MethodGet, "/export/docx", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleExport_ConflictWhileBusy(t *testing.T) {
	engine := &blockingEngine{started: make(chan struct{}), release: make(chan struct{})}
	srv, _ := newTestServer(t, engine)
	h := srv.Handler()

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() { done <- do(t, h, http.MethodGet, "/export/pdf", "") }()
	<-engine.started

	rec := do(t, h, http.MethodGet, "/export/json", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	close(engine.release)
	assert.Equal(t, http.StatusOK, (<-done).Code)
}

func TestHandleEvents(t *testing.T) {
	srv, sess := newTestServer(t, pdf.PaintEngine{})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() (string, string) { return readSSE(t, reader) }

	name, data := readEvent()
	assert.Equal(t, eventCompletion, name)
	assert.JSONEq(t, `{"percent":0}`, data)
	name, _ = readEvent()
	assert.Equal(t, eventPreview, name)

	sess.SetPersonalField(types.PersonalFullName, "Jane")

	name, data = readEvent()
	assert.Equal(t, eventCompletion, name)
	assert.JSONEq(t, `{"percent":13}`, data)
	name, data = readEvent()
	assert.Equal(t, eventPreview, name)
	assert.Contains(t, data, "Jane")
}

// readSSE reads one event from a text/event-stream body.
func readSSE(t *testing.T, reader *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case line == "":
			return name, data
		}
	}
}

func TestHandleEvents_OutlivesWriteTimeout(t *testing.T) {
	srv, sess := newTestServer(t, pdf.PaintEngine{})
	ts := httptest.NewUnstartedServer(srv.Handler())
	ts.Config.WriteTimeout = 100 * time.Millisecond
	ts.Start()
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	readSSE(t, reader)
	readSSE(t, reader)

	time.Sleep(300 * time.Millisecond)
	sess.SetPersonalField(types.PersonalFullName, "Jane")

	name, data := readSSE(t, reader)
	assert.Equal(t, eventCompletion, name)
	assert.JSONEq(t, `{"percent":13}`, data)
}

func TestHub_DropsForSlowClients(t *testing.T) {
	h := newHub()
	ch, ok := h.subscribe()
	require.True(t, ok)

	for i := 0; i < subscriberBuffer+5; i++ {
		h.OnCompletion(i)
	}
	assert.Len(t, ch, subscriberBuffer)

	h.close()
	_, ok = h.subscribe()
	assert.False(t, ok)

	// closed channels drain and then report closed
	for range ch {
	}
	h.unsubscribe(ch)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrUnknownCollection{Name: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "f", Message: "m"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&types.UnknownFieldError{Kind: "experience", Field: "x"}))
	assert.Equal(t, http.StatusConflict, HTTPStatus(export.ErrExportInProgress))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&export.ExportError{Format: export.FormatPDF, Message: "boom"}))
}
