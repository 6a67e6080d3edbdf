package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/application/dto"
	"github.com/hapkiduki/inventory-go/internal/application/port"
	"github.com/hapkiduki/inventory-go/internal/domain"
)

// SKUService is the SKU use case surface the handler needs.
type SKUService interface {
	AddToProduct(ctx context.Context, productID uuid.UUID, in dto.SKURequest) (*dto.SKUResponse, error)
	Get(ctx context.Context, skuID uuid.UUID) (*dto.SKUResponse, error)
	Update(ctx context.Context, skuID uuid.UUID, in dto.SKURequest) (*dto.SKUResponse, error)
	Delete(ctx context.Context, skuID uuid.UUID) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*dto.SKUResponse, error)
}

// SKUHandler serves /products/{productId}/skus.
type SKUHandler struct {
	svc SKUService
	log port.Logger
}

// NewSKUHandler builds a SKUHandler.
func NewSKUHandler(svc SKUService, log port.Logger) *SKUHandler {
	return &SKUHandler{svc: svc, log: log}
}

// Routes mounts the SKU endpoints; productId comes from the parent route.
func (h *SKUHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Route("/{skuId}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
	})
	return r
}

func (h *SKUHandler) create(w http.ResponseWriter, r *http.Request) {
	productID, err := uuidParam(r, "productId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var in dto.SKURequest
	if err := decode(r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out, err := h.svc.AddToProduct(r.Context(), productID, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusCreated, out)
}

func (h *SKUHandler) list(w http.ResponseWriter, r *http.Request) {
	productID, err := uuidParam(r, "productId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out, err := h.svc.ListByProduct(r.Context(), productID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, out)
}

func (h *SKUHandler) get(w http.ResponseWriter, r *http.Request) {
	sku, err := h.owned(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, sku)
}

func (h *SKUHandler) update(w http.ResponseWriter, r *http.Request) {
	sku, err := h.owned(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var in dto.SKURequest
	if err := decode(r, &in); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out, err := h.svc.Update(r.Context(), sku.ID, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, http.StatusOK, out)
}

func (h *SKUHandler) delete(w http.ResponseWriter, r *http.Request) {
	sku, err := h.owned(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), sku.ID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondNoContent(w, r)
}

// owned resolves {skuId} and reports it as not found unless it belongs
// to {productId}.
func (h *SKUHandler) owned(r *http.Request) (*dto.SKUResponse, error) {
	productID, err := uuidParam(r, "productId")
	if err != nil {
		return nil, err
	}
	skuID, err := uuidParam(r, "skuId")
	if err != nil {
		return nil, err
	}
	sku, err := h.svc.Get(r.Context(), skuID)
	if err != nil {
		return nil, err
	}
	if sku.ProductID != productID {
		return nil, domain.NewNotFoundError("sku", skuID)
	}
	return sku, nil
}
