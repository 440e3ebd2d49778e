package httpapi

import (
	"encoding/json"
	"net/http"

	"pos-backend/pos-svc/internal/domain"
)

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := h.Customers.Create(r.Context(), &customer); err != nil {
		writeError(w, err, "Customer")
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List(r.Context())
	if err != nil {
		writeError(w, err, "Customer")
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Customers.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err, "Customer")
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	customer.ID = pathID(r)
	if err := h.Customers.Update(r.Context(), &customer); err != nil {
		writeError(w, err, "Customer")
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Customers.Delete(r.Context(), pathID(r)); err != nil {
		writeError(w, err, "Customer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
