package httpapi

import (
	"encoding/json"
	"net/http"

	"pos-backend/pos-svc/internal/domain"
)

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	table := domain.Table{IsActive: true}
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := h.Tables.Create(r.Context(), &table); err != nil {
		writeError(w, err, "Table")
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List(r.Context())
	if err != nil {
		writeError(w, err, "Table")
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err, "Table")
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) updateTable(w http.ResponseWriter, r *http.Request) {
	table := domain.Table{IsActive: true}
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	table.ID = pathID(r)
	if err := h.Tables.Update(r.Context(), &table); err != nil {
		writeError(w, err, "Table")
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) updateTableStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	table, err := h.Tables.UpdateStatus(r.Context(), pathID(r), body.Status)
	if err != nil {
		writeError(w, err, "Table")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   map[string]interface{}{"table": table},
	})
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	if err := h.Tables.Delete(r.Context(), pathID(r)); err != nil {
		writeError(w, err, "Table")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
