package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"pos-backend/analytics-svc/internal/domain"
	"pos-backend/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

const (
	defaultLimit = 5
	maxLimit     = 50
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/dashboard", h.getDashboard).Methods("GET")
	r.HandleFunc("/api/analytics/summary", h.getSummary).Methods("GET")
	r.HandleFunc("/api/analytics/top-products", h.getTopProducts).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Analytics.Dashboard(r.Context())
	if err != nil {
		log.Printf("[analytics-svc] dashboard failed: %v", err)
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "success", "data": dashboard})
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	now := h.Analytics.Now()
	from, to := service.DayBounds(now)

	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := parseTime(raw, now.Location())
		if err != nil {
			http.Error(w, "invalid from: "+err.Error(), http.StatusBadRequest)
			return
		}
		from = t
		_, to = service.DayBounds(t)
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := parseTime(raw, now.Location())
		if err != nil {
			http.Error(w, "invalid to: "+err.Error(), http.StatusBadRequest)
			return
		}
		to = t
	}

	summary, err := h.Analytics.Summary(r.Context(), from, to)
	if errors.Is(err, domain.ErrInvalidWindow) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[analytics-svc] summary failed: %v", err)
		http.Error(w, "failed to build summary", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getTopProducts(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopProducts(r.Context(), parseLimit(r))
	if err != nil {
		log.Printf("[analytics-svc] top products failed: %v", err)
		writeJSON(w, http.StatusOK, []interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopProductsToday(r.Context(), parseLimit(r))
	if err != nil {
		log.Printf("[analytics-svc] top today failed: %v", err)
		writeJSON(w, http.StatusOK, []interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// parseTime accepts RFC3339 timestamps or plain dates, which are taken as
// local midnight.
func parseTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, loc)
}

func parseLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
