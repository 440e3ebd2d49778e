package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"pos-backend/pos-svc/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"status":  "error",
		"message": message,
	})
}

// writeError maps domain errors onto status codes. resource names the
// entity in 404 messages.
func writeError(w http.ResponseWriter, err error, resource string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"field":   ve.Field,
			"message": ve.Message,
		})
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, resource+" not found", http.StatusNotFound)
	default:
		log.Printf("[pos-svc] %s request failed: %v", resource, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
