package coin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/assethub/hub-api/internal/pkg/response"
)

// Handler serves balance and ledger reads. All mutations happen through the
// engines that own a trigger; there is no write endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetBalances handles GET /users/{id}/coins
func (h *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	balances, err := h.svc.GetBalances(r.Context(), userID)
	if err != nil {
		if err == ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, balances)
}

// GetHistory handles GET /users/{id}/coins/history?currency=&limit=
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var currency *Currency
	if c := r.URL.Query().Get("currency"); c != "" {
		cur := Currency(c)
		if !cur.Valid() {
			response.BadRequest(w, "Invalid currency")
			return
		}
		currency = &cur
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}

	events, err := h.svc.GetHistory(r.Context(), userID, currency, limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]interface{}{"events": events})
}

// ListEvents handles GET /users/{id}/coins/events?page=&page_size=
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	page := 1
	pageSize := 20
	if p := r.URL.Query().Get("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if ps := r.URL.Query().Get("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	events, total, err := h.svc.ListEvents(r.Context(), userID, page, pageSize)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, map[string]interface{}{"events": events}, response.Meta{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Routes returns per-user coin routes, mounted under /users/{id}/coins.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetBalances)
	r.Get("/history", h.GetHistory)
	r.Get("/events", h.ListEvents)

	return r
}
