// AngelaMos | 2026
// handler.go

package cart

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
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.AddItem)
		r.Delete("/items/{productID}", h.RemoveItem)
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, summary)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if _, err := h.service.AddByID(r.Context(), req.ProductID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	h.writeSummary(w, r, http.StatusCreated)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "product id must be an integer")
		return
	}

	if _, err := h.service.Remove(r.Context(), id); err != nil {
		core.InternalServerError(w, err)
		return
	}

	h.writeSummary(w, r, http.StatusOK)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) writeSummary(w http.ResponseWriter, r *http.Request, status int) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.JSON(w, status, core.Response{Success: true, Data: summary})
}
