package star

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/assethub/hub-api/internal/middleware"
	"github.com/assethub/hub-api/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Star(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	assetID := chi.URLParam(r, "id")

	status, err := h.service.Star(r.Context(), userID, assetID)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, status)
}

func (h *Handler) Unstar(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	assetID := chi.URLParam(r, "id")

	status, err := h.service.Unstar(r.Context(), userID, assetID)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, status)
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	assetID := chi.URLParam(r, "id")

	status, err := h.service.GetStatus(r.Context(), userID, assetID)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, status)
}

func (h *Handler) ListStarred(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	stars, err := h.service.ListStarred(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, stars)
}
