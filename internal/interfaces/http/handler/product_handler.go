package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/application/dto"
	"github.com/hapkiduki/inventory-go/internal/application/port"
	"github.com/hapkiduki/inventory-go/internal/domain"
	"github.com/hapkiduki/inventory-go/internal/domain/valueobject"
)

// ProductService is the product use case surface the handler needs.
type ProductService interface {
	Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, in dto.SearchProductsRequest) (*dto.ProductPage, error)
}

// ProductHandler serves /products and nests the SKU routes.
type ProductHandler struct {
	svc             ProductService
	skus            *SKUHandler
	log             port.Logger
	defaultPageSize int
}

// NewProductHandler builds a ProductHandler. defaultPageSize applies when
// the query omits pageSize.
func NewProductHandler(svc ProductService, skus *SKUHandler, log port.Logger, defaultPageSize int) *ProductHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = valueobject.DefaultPageSize
	}
	return &ProductHandler{svc: svc, skus: skus, log: log, defaultPageSize: defaultPageSize}
}

// Routes mounts the product endpoints.
func (h *ProductHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.search)
	r.Route("/{productId}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
		if h.skus != nil {
			r.Mount("/skus", h.skus.Routes())
		}
	})
	return r
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var in dto.CreateProductRequest
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

// search handles GET /products?name=&categoryId=&page=&pageSize=.
func (h *ProductHandler) search(w http.ResponseWriter, r *http.Request) {
	in, err := h.parseSearch(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out, err := h.svc.Search(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, out)
}

func (h *ProductHandler) parseSearch(r *http.Request) (dto.SearchProductsRequest, error) {
	q := r.URL.Query()
	in := dto.SearchProductsRequest{PageSize: h.defaultPageSize}

	if q.Has("name") {
		name := q.Get("name")
		in.Name = &name
	}
	if raw := q.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return in, domain.NewValidationError("categoryId", "must be a valid UUID")
		}
		in.CategoryID = &id
	}
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return in, domain.NewValidationError("page", "must be an integer")
		}
		in.Page = n
	}
	if raw := q.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return in, domain.NewValidationError("pageSize", "must be an integer")
		}
		in.PageSize = n
	}
	return in, nil
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "productId")
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

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "productId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var in dto.UpdateProductRequest
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

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "productId")
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
