// AngelaMos | 2026
// handler.go

package order

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/cskit/internal/core"
	"github.com/carterperez-dev/cskit/internal/middleware"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireIdentity).Post("/checkout", h.Checkout)
	r.Get("/orders", h.List)
	r.Get("/orders/tracking", h.Tracking)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			core.JSONError(w, core.NewAppError(
				"EMPTY_CART",
				"cart is empty",
				http.StatusBadRequest,
				err,
			))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, result)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.engine.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.List(w, orders, len(orders))
}

func (h *Handler) Tracking(w http.ResponseWriter, r *http.Request) {
	t, err := h.engine.Tracking(r.Context())
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "order")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, t)
}
