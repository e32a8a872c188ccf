package issue

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

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

// Create handles POST /assets/{id}/issues
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	authorID := middleware.GetUserID(r.Context())
	assetID := chi.URLParam(r, "id")

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	i, err := h.service.Create(r.Context(), authorID, assetID, req.Title, req.Body, req.Labels)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			response.NotFound(w, "Asset not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.Created(w, i)
}

// GetByID handles GET /issues/{issueID}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "issueID"))
	if err != nil {
		response.BadRequest(w, "Invalid issue ID")
		return
	}

	i, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrIssueNotFound) {
			response.NotFound(w, "Issue not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, i)
}

// SetStatus handles PATCH /issues/{issueID}/status
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "issueID"))
	if err != nil {
		response.BadRequest(w, "Invalid issue ID")
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.service.SetStatus(r.Context(), id, Status(req.Status)); err != nil {
		if errors.Is(err, ErrIssueNotFound) {
			response.NotFound(w, "Issue not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.NoContent(w)
}

// ListByAsset handles GET /assets/{id}/issues
func (h *Handler) ListByAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var status *Status
	if s := r.URL.Query().Get("status"); s == string(StatusOpen) || s == string(StatusClosed) {
		st := Status(s)
		status = &st
	}

	issues, total, err := h.service.ListByAsset(r.Context(), assetID, status, page, pageSize)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.WithMeta(w, issues, response.Meta{Total: total, Page: page, PageSize: pageSize})
}
