package comment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// Create handles POST /assets/{id}/comments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
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

	c, err := h.service.Create(r.Context(), userID, assetID, req.Content, req.Rating)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			response.NotFound(w, "Asset not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.Created(w, c)
}

// ListByAsset handles GET /assets/{id}/comments
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

	comments, total, err := h.service.ListByAsset(r.Context(), assetID, page, pageSize)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.WithMeta(w, comments, response.Meta{Total: total, Page: page, PageSize: pageSize})
}
