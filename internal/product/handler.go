// AngelaMos | 2026
// handler.go

package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/cskit/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{productID}", h.Get)
		r.Put("/{productID}", h.Update)
		r.Delete("/{productID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.List(w, products, len(products))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	p, err := h.service.Create(r.Context(), req.Fields())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	p, found, err := h.service.Update(r.Context(), id, req.Fields())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	if !found {
		core.NotFound(w, "product")
		return
	}

	core.OK(w, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return req, false
	}

	return req, true
}

func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "product id must be an integer")
		return 0, false
	}
	return id, true
}
