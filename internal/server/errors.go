package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrUnknownCollection indicates a request addressed a collection that does
// not exist
type ErrUnknownCollection struct {
	Name string
}

func (e *ErrUnknownCollection) Error() string {
	return fmt.Sprintf("unknown collection: %s", e.Name)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unknownCollection *ErrUnknownCollection
		unknownField      *types.UnknownFieldError
		validation        *ErrValidation
		badValue          *strconv.NumError
	)
	switch {
	case errors.As(err, &unknownCollection):
		return http.StatusNotFound
	case errors.As(err, &unknownField), errors.As(err, &validation), errors.As(err, &badValue):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrExportInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
