// AngelaMos | 2026
// handler.go

package user

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
	r.Route("/session", func(r chi.Router) {
		r.Post("/", h.Login)
		r.Get("/", h.Current)
		r.Delete("/", h.Logout)
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.service.Login(r.Context(), req.Email, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "email and username are required")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToIdentityResponse(id))
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	id, err := h.service.Current(r.Context())
	if err != nil {
		if errors.Is(err, core.ErrNoIdentity) {
			core.JSONError(w, core.NoIdentityError())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToIdentityResponse(id))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
