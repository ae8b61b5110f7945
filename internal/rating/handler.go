// AngelaMos | 2026
// handler.go

package rating

import (
	"encoding/json"
	"errors"
	"net/http"

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
	r.Get("/orders/{orderID}/rating", h.Pending)
	r.Put("/orders/{orderID}/rating", h.Stage)
	r.Post("/orders/{orderID}/rating", h.Submit)
}

func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")

	stars, err := h.service.Pending(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, RatingResponse{OrderID: id, Stars: stars})
}

func (h *Handler) Stage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")

	var req StageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.Stage(r.Context(), id, req.Stars); err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, RatingResponse{OrderID: id, Stars: req.Stars})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")

	o, changed, err := h.service.Submit(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, SubmitResponse{
		OrderID: o.ID,
		Rating:  o.Rating,
		Changed: changed,
	})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "order")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, "stars must be between 1 and 5")
	case errors.Is(err, ErrNotDelivered):
		core.JSONError(w, core.ConflictError(
			"NOT_DELIVERED",
			"only delivered orders can be rated",
		))
	default:
		core.InternalServerError(w, err)
	}
}
