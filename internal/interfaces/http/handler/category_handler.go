package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/application/dto"
	"github.com/hapkiduki/inventory-go/internal/application/port"
)

// CategoryService is the category use case surface the handler needs.
type CategoryService interface {
	Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*dto.CategoryResponse, error)
}

// CategoryHandler serves /categories.
type CategoryHandler struct {
	svc CategoryService
	log port.Logger
}

// NewCategoryHandler builds a CategoryHandler.
func NewCategoryHandler(svc CategoryService, log port.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: log}
}

// Routes mounts the category endpoints.
func (h *CategoryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
	})
	return r
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var in dto.CreateCategoryRequest
	if err := decode(r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusCreated, out)
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, out)
}

func (h *CategoryHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, out)
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var in dto.UpdateCategoryRequest
	if err := decode(r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, out)
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondNoContent(w, r)
}
