// Package handler exposes the inventory services over HTTP with chi.
// Every response body is a dto.APIResponse envelope.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/application/dto"
	"github.com/hapkiduki/inventory-go/internal/application/port"
	"github.com/hapkiduki/inventory-go/internal/domain"
)

// Error codes carried in dto.APIError.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeTooLarge       = "REQUEST_TOO_LARGE"
	CodeInternal       = "INTERNAL_ERROR"
)

func respond[T any](w http.ResponseWriter, r *http.Request, status int, data T) {
	render.Status(r, status)
	render.JSON(w, r, dto.NewSuccessResponse(data))
}

func respondNoContent(w http.ResponseWriter, r *http.Request) {
	render.NoContent(w, r)
}

// respondError maps err onto a status code and envelope:
// validation 400, not found 404, conflict 409, anything else 500.
func respondError(w http.ResponseWriter, r *http.Request, log port.Logger, err error) {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
		conflict   *domain.ConflictError
		tooLarge   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &validation):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewValidationErrorResponse([]dto.ValidationError{
			{Field: validation.Field, Message: validation.Message},
		}))
	case errors.As(err, &notFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, dto.NewErrorResponse(CodeNotFound, notFound.Error()))
	case errors.As(err, &conflict):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, dto.NewErrorResponse(CodeConflict, conflict.Error()))
	case errors.As(err, &tooLarge):
		render.Status(r, http.StatusRequestEntityTooLarge)
		render.JSON(w, r, dto.NewErrorResponse(CodeTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)))
	default:
		log.WithContext(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, dto.NewErrorResponse(CodeInternal, "An unexpected error occurred"))
	}
}

// decode reads a JSON body into v. Malformed bodies become a 400.
func decode(r *http.Request, v any) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return domain.NewValidationError("body", "malformed JSON: "+err.Error())
	}
	return nil
}

// uuidParam parses the chi URL parameter name as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, dto.NewErrorResponse(CodeNotFound, "The requested resource was not found"))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, dto.NewErrorResponse("METHOD_NOT_ALLOWED", "The requested method is not allowed for this resource"))
}
