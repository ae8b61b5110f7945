// AngelaMos | 2026
// handler.go

package preference

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/cskit/internal/core"
)

type DarkModeRequest struct {
	Enabled *bool `json:"enabled"`
}

type DarkModeResponse struct {
	Enabled bool `json:"enabled"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/preferences/dark-mode", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Set)
		r.Post("/toggle", h.Toggle)
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	on, err := h.service.DarkMode(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DarkModeResponse{Enabled: on})
}

func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	var req DarkModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
		core.BadRequest(w, "enabled is required")
		return
	}

	if err := h.service.SetDarkMode(r.Context(), *req.Enabled); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DarkModeResponse{Enabled: *req.Enabled})
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	on, err := h.service.ToggleDarkMode(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DarkModeResponse{Enabled: on})
}
