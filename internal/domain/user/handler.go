package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/assethub/hub-api/internal/pkg/response"
	"github.com/assethub/hub-api/internal/pkg/validator"
)

// Handler handles user HTTP requests
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register handles POST /users/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	var email *string
	if req.Email != "" {
		email = &req.Email
	}

	u, err := h.svc.Register(r.Context(), req.Name, email)
	if err != nil {
		if err == ErrEmailTaken {
			response.Conflict(w, "Email already taken")
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, u)
}

// GetByID handles GET /users/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	u, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, u)
}
