package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/bimatch/core"
)

// Error types that do not come from core.Kind.
const (
	TypeRateLimited = "rate_limited"
	TypeBadRequest  = "bad_request"
)

// AppError is the body of every non-2xx response:
//
//	{"error": {"type": "...", "message": "...", "details": {...}}}
type AppError struct {
	Status  int            `json:"-"`
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *AppError) Error() string { return fmt.Sprintf("%s: %s", e.Type, e.Message) }

type errorBody struct {
	Error *AppError `json:"error"`
}

// fromError maps a core or matching error to its HTTP form. User-facing text lives here.
func fromError(err error) *AppError {
	kind := core.KindOf(err)
	app := &AppError{Type: kind.String()}

	switch kind {
	case core.KindDuplicateNode:
		app.Status = http.StatusConflict
		app.Message = "node already exists"
		var dup *core.DuplicateNodeError
		if errors.As(err, &dup) {
			app.Details = map[string]any{"id": dup.ID}
		}
	case core.KindUnknownNode:
		app.Status = http.StatusNotFound
		app.Message = "node or edge not found"
		var unk *core.UnknownNodeError
		if errors.As(err, &unk) {
			app.Message = "unknown node"
			app.Details = map[string]any{"ids": unk.IDs}
		}
	case core.KindSameFraction:
		app.Status = http.StatusUnprocessableEntity
		app.Message = "both endpoints belong to the same partition"
		var sf *core.SameFractionError
		if errors.As(err, &sf) {
			app.Details = map[string]any{
				"ids":       []string{sf.ID1, sf.ID2},
				"partition": sf.Partition.String(),
			}
		}
	case core.KindInvalidInput:
		app.Status = http.StatusBadRequest
		app.Message = err.Error()
	case core.KindNotBipartite:
		app.Status = http.StatusInternalServerError
		app.Message = "graph is not bipartite"
	default:
		app.Status = http.StatusInternalServerError
		app.Type = core.KindInternal.String()
		app.Message = "internal error"
	}

	return app
}

// fromValidation turns validator errors into a 400 listing each failing field.
func fromValidation(err error) *AppError {
	app := &AppError{
		Status:  http.StatusBadRequest,
		Type:    core.KindInvalidInput.String(),
		Message: "request validation failed",
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		app.Message = err.Error()
		return app
	}
	fields := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = formatFieldError(fe)
	}
	app.Details = map[string]any{"fields": fields}

	return app
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

func badRequest(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Type: TypeBadRequest, Message: msg}
}
