package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "pos-backend/pos-svc/internal/api/http"
	"pos-backend/pos-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlerServesOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("ORDER_STATUS_POLICY", "strict")
	router := httpapi.NewRouter(newHandler(storage.NewPostgresRepository(db), nil))

	mock.ExpectQuery("FROM orders ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "order_type", "payment_method", "status",
			"table_number", "waiter_name", "created_by", "subtotal", "discount", "total_amount", "created_at", "updated_at"}))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var orders []interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&orders))
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}
