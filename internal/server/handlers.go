package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// ValueRequest carries a single value to set.
type ValueRequest struct {
	Value FieldValue `json:"value"`
}

// UpdateEntryRequest sets one field of an entry.
type UpdateEntryRequest struct {
	Field string     `json:"field"`
	Value FieldValue `json:"value"`
}

// FieldValue is a field value sent as a JSON string, boolean or number.
// Booleans and numbers are kept in their JSON spelling.
type FieldValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FieldValue(s)
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = ""
	case bool:
		*v = FieldValue(strconv.FormatBool(x))
	case float64:
		*v = FieldValue(string(data))
	default:
		return fmt.Errorf("value must be a string, boolean or number")
	}
	return nil
}

// StateResponse is the editing state as returned by GET /state.
type StateResponse struct {
	Data       *types.Document `json:"data"`
	Template   types.Template  `json:"template"`
	Theme      types.Theme     `json:"theme"`
	Completion int             `json:"completion"`
	Revision   uint64          `json:"revision"`
}

// EntryResponse identifies a newly created entry.
type EntryResponse struct {
	Kind types.Kind `json:"kind"`
	ID   types.ID   `json:"id"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
	}
	s.errorResponse(w, status, err.Error())
}

func (s *Server) respondState(w http.ResponseWriter, status int) {
	snap := s.session.Snapshot()
	s.jsonResponse(w, status, StateResponse{
		Data:       snap.Document,
		Template:   snap.Template,
		Theme:      snap.Theme,
		Completion: snap.Completion,
		Revision:   snap.Revision,
	})
}

func parseKind(name string) (types.Kind, error) {
	kind, err := types.ParseKind(name)
	if err != nil {
		return "", &ErrUnknownCollection{Name: name}
	}
	return kind, nil
}

// handleState returns the document with its presentation and completion
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.respondState(w, http.StatusOK)
}

// handlePreview returns the preview as a standalone HTML page
func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	snap := s.session.Snapshot()
	page, err := rendering.RenderPage(snap.Document, snap.Template, snap.Theme)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		log.Printf("Error writing preview: %v", err)
	}
}

// handleSetPersonal sets one personal field
func (s *Server) handleSetPersonal(w http.ResponseWriter, r *http.Request) {
	field, err := types.ParsePersonalField(r.PathValue("field"))
	if err != nil {
		s.fail(w, err)
		return
	}
	var req ValueRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.session.SetPersonalField(field, string(req.Value))
	s.respondState(w, http.StatusOK)
}

// handleSetCustomTitle sets the custom section title
func (s *Server) handleSetCustomTitle(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.session.SetCustomSectionTitle(string(req.Value))
	s.respondState(w, http.StatusOK)
}

// handleAddSkill appends a skill; blank and duplicate skills are ignored
func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.session.AddSkill(string(req.Value))
	s.respondState(w, http.StatusOK)
}

// handleRemoveSkill removes a skill by exact value
func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	s.session.RemoveSkill(r.PathValue("skill"))
	s.respondState(w, http.StatusOK)
}

// handleAddEntry appends an empty entry to a collection
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r.PathValue("kind"))
	if err != nil {
		s.fail(w, err)
		return
	}
	id, err := s.session.AddEntry(kind)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, EntryResponse{Kind: kind, ID: id})
}

// handleUpdateEntry sets one field of an entry. Unknown ids are ignored.
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r.PathValue("kind"))
	if err != nil {
		s.fail(w, err)
		return
	}
	var req UpdateEntryRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Field == "" {
		s.fail(w, &ErrValidation{Field: "field", Message: "is required"})
		return
	}
	if err := s.session.UpdateEntry(kind, types.ID(r.PathValue("id")), req.Field, string(req.Value)); err != nil {
		s.fail(w, err)
		return
	}
	s.respondState(w, http.StatusOK)
}

// handleRemoveEntry deletes an entry. Unknown ids are ignored.
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(r.PathValue("kind"))
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := s.session.RemoveEntry(kind, types.ID(r.PathValue("id"))); err != nil {
		s.fail(w, err)
		return
	}
	s.respondState(w, http.StatusOK)
}

// handleClear empties the document, keeping the template and theme
func (s *Server) handleClear(w http.ResponseWriter, _ *http.Request) {
	s.session.Clear()
	s.respondState(w, http.StatusOK)
}

// handleSelectTemplate switches the template; unknown names select the default
func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	s.session.SelectTemplate(r.PathValue("name"))
	s.respondState(w, http.StatusOK)
}

// handleSelectTheme switches the theme; unknown names select the default
func (s *Server) handleSelectTheme(w http.ResponseWriter, r *http.Request) {
	s.session.SelectTheme(r.PathValue("name"))
	s.respondState(w, http.StatusOK)
}
