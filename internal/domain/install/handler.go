package install

import (
	"errors"
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

// Download records an install. Works with or without an identified user.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")
	userID := middleware.UserIDPtr(r.Context())

	result, err := h.service.RecordInstall(r.Context(), assetID, userID)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			response.NotFound(w, "asset not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, result)
}

func (h *Handler) ListInstalls(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	installs, err := h.service.ListInstalls(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, installs)
}
