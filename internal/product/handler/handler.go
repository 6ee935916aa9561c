package handler

import (
	"net/http"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/authz"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

const resource = "products"

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router, mw *middleware.Middleware) {
	r.Route("/products", func(r chi.Router) {
		r.With(mw.Require(resource, authz.ActionRead)).Get("/", mw.ErrorHandler(h.ListProducts))
		r.With(mw.Require(resource, authz.ActionWrite)).Post("/", mw.ErrorHandler(h.CreateProduct))
		r.With(mw.Require(resource, authz.ActionRead)).Get("/{id}", mw.ErrorHandler(h.GetProduct))
		r.With(mw.Require(resource, authz.ActionWrite)).Patch("/{id}", mw.ErrorHandler(h.UpdateProduct))
		r.With(mw.Require(resource, authz.ActionWrite)).Delete("/{id}", mw.ErrorHandler(h.DeleteProduct))
	})
}

type createProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	ImageURL    *string         `json:"image_url"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Category    *string          `json:"category"`
	ImageURL    *string          `json:"image_url"`
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	var req createProductRequest
	if err := handlerutils.DecodeJSON(r, &req); err != nil {
		return err
	}

	p, err := h.uc.CreateProduct(r.Context(), &dto.CreateProductInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	p, err := h.uc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return handlerutils.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filters := &dto.ProductFilters{
		Category:    q.Get("category"),
		SearchQuery: q.Get("q"),
		LowStock:    q.Get("low_stock") == "true",
		InStock:     q.Get("in_stock") == "true",
		SortBy:      q.Get("sort_by"),
		SortOrder:   q.Get("sort_order"),
		Page:        handlerutils.QueryInt(r, "page", 1),
		PageSize:    handlerutils.QueryInt(r, "page_size", 0),
	}

	products, count, err := h.uc.ListProducts(r.Context(), filters)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, handlerutils.Page[model.Product]{
		Items: products,
		Total: count,
	})
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	var req updateProductRequest
	if err := handlerutils.DecodeJSON(r, &req); err != nil {
		return err
	}

	p, err := h.uc.UpdateProduct(r.Context(), &dto.UpdateProductInput{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	if err := h.uc.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
