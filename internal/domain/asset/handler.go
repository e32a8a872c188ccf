package asset

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/assethub/hub-api/internal/middleware"
	"github.com/assethub/hub-api/internal/pkg/response"
	"github.com/assethub/hub-api/internal/pkg/validator"
)

// Handler handles asset HTTP requests
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Publish handles POST /assets
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	a, err := h.svc.Publish(r.Context(), userID, req.Name, req.DisplayName, req.Version)
	if err != nil {
		if err == ErrNameTaken {
			response.Conflict(w, "Asset name already taken")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, a)
}

// GetByID handles GET /assets/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == ErrAssetNotFound {
			response.NotFound(w, "Asset not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, a)
}

// SyncStars handles PUT /assets/{id}/github-stars
func (h *Handler) SyncStars(w http.ResponseWriter, r *http.Request) {
	var req SyncStarsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	if err := h.svc.SyncGithubStars(r.Context(), chi.URLParam(r, "id"), req.GithubStars); err != nil {
		if err == ErrAssetNotFound {
			response.NotFound(w, "Asset not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"status": "synced"})
}
