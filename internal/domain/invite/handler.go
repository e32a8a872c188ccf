package invite

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/assethub/hub-api/internal/middleware"
	"github.com/assethub/hub-api/internal/pkg/response"
	"github.com/assethub/hub-api/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Activate handles POST /invites/activate
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Activate(r.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrCodeNotFound):
			response.NotFound(w, "Invite code not found")
		case errors.Is(err, ErrAlreadyActivated):
			response.Conflict(w, "An invite code was already activated for this user")
		case errors.Is(err, ErrCodeExhausted):
			response.Conflict(w, "Invite code has no uses left")
		case errors.Is(err, ErrCodeExpired):
			response.Conflict(w, "Invite code has expired")
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			response.InternalError(w)
		}
		return
	}
	response.OK(w, result)
}

// Validate handles GET /invites/validate/{code}
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Validate(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			response.NotFound(w, "Invite code not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, status)
}

// Status handles GET /invites/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	activated, err := h.service.HasActivated(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, map[string]bool{"activated": activated})
}

// Mine handles GET /invites/mine
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	codes, err := h.service.CodesCreatedBy(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, codes)
}
