package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pos-backend/pos-svc/internal/domain"
	"pos-backend/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

// UserHeader carries the caller identity set by the gateway or auth layer.
const UserHeader = "X-User-ID"

type Handler struct {
	Orders     service.OrderServiceInterface
	Categories service.CategoryServiceInterface
	Products   service.ProductServiceInterface
	Tables     service.TableServiceInterface
	Customers  service.CustomerServiceInterface
}

func NewHandler(orderSvc service.OrderServiceInterface, categorySvc service.CategoryServiceInterface, productSvc service.ProductServiceInterface, tableSvc service.TableServiceInterface, customerSvc service.CustomerServiceInterface) *Handler {
	return &Handler{
		Orders:     orderSvc,
		Categories: categorySvc,
		Products:   productSvc,
		Tables:     tableSvc,
		Customers:  customerSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories/{id:[0-9]+}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/categories/{id:[0-9]+}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/categories/{id:[0-9]+}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products/{id:[0-9]+}", h.getProduct).Methods("GET")
	r.HandleFunc("/api/products/{id:[0-9]+}", h.updateProduct).Methods("PUT")
	r.HandleFunc("/api/products/{id:[0-9]+}", h.deleteProduct).Methods("DELETE")

	r.HandleFunc("/api/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables/{id:[0-9]+}", h.getTable).Methods("GET")
	r.HandleFunc("/api/tables/{id:[0-9]+}", h.updateTable).Methods("PUT")
	r.HandleFunc("/api/tables/{id:[0-9]+}", h.deleteTable).Methods("DELETE")
	r.HandleFunc("/api/tables/{id:[0-9]+}/status", h.updateTableStatus).Methods("PATCH")

	r.HandleFunc("/api/customers", h.createCustomer).Methods("POST")
	r.HandleFunc("/api/customers", h.getCustomers).Methods("GET")
	r.HandleFunc("/api/customers/{id:[0-9]+}", h.getCustomer).Methods("GET")
	r.HandleFunc("/api/customers/{id:[0-9]+}", h.updateCustomer).Methods("PUT")
	r.HandleFunc("/api/customers/{id:[0-9]+}", h.deleteCustomer).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON format: "+err.Error())
		return
	}

	if user := strings.TrimSpace(r.Header.Get(UserHeader)); user != "" {
		req.CreatedBy = &user
	}

	order, err := h.Orders.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Order")
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err, "Order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err, "Order")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "Invalid JSON format: "+err.Error())
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), pathID(r), body.Status)
	if err != nil {
		writeError(w, err, "Order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   map[string]interface{}{"order": order},
	})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.QRCode(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err, "Order")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
