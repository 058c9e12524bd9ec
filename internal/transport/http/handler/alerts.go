package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sheisstarwithoutmoon/SafeLink/internal/application/alert"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/domain"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/transport/http/middleware"
)

const (
	defaultListLimit = 10
	// maxListLimit caps caller-supplied limits; anything larger would at
	// best scan the whole table and at worst overflow the store's int32.
	maxListLimit = 100
)

// AlertHandler handles the dispatch and listing endpoints.
type AlertHandler struct {
	svc alert.Service
}

func NewAlertHandler(svc alert.Service) *AlertHandler {
	return &AlertHandler{svc: svc}
}

func (h *AlertHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req domain.AlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	uid := "unauthenticated"
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		uid = claims.UserID
	}
	slog.Info("alert dispatch requested", "uid", uid, "phone", req.PhoneNumber)

	result, err := h.svc.Dispatch(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = min(n, maxListLimit)
		}
	}

	records, err := h.svc.ListRecent(r.Context(), int32(limit))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch alerts")
		return
	}
	if records == nil {
		records = []domain.AlertRecord{}
	}
	writeJSON(w, http.StatusOK, AlertsEnvelope{Alerts: records})
}
