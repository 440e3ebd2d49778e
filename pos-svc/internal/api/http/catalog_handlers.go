package httpapi

import (
	"encoding/json"
	"net/http"

	"pos-backend/pos-svc/internal/domain"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := h.Categories.Create(r.Context(), &category); err != nil {
		writeError(w, err, "Category")
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context())
	if err != nil {
		writeError(w, err, "Category")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.Categories.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err, "Category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	category.ID = pathID(r)
	if err := h.Categories.Update(r.Context(), &category); err != nil {
		writeError(w, err, "Category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Categories.Delete(r.Context(), pathID(r)); err != nil {
		writeError(w, err, "Category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	product := domain.Product{IsAvailable: true}
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := h.Products.Create(r.Context(), &product); err != nil {
		writeError(w, err, "Product")
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err, "Product")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Products.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err, "Product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	product := domain.Product{IsAvailable: true}
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	product.ID = pathID(r)
	if err := h.Products.Update(r.Context(), &product); err != nil {
		writeError(w, err, "Product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Products.Delete(r.Context(), pathID(r)); err != nil {
		writeError(w, err, "Product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
