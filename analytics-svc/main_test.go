package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "pos-backend/analytics-svc/internal/api/http"
	"pos-backend/analytics-svc/internal/domain"
	"pos-backend/analytics-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopTodayFallsBackToLedger(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	mock.ExpectQuery("SELECT oi.product_name, SUM\\(oi.quantity\\)").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 3).
		WillReturnRows(sqlmock.NewRows([]string{"product_name", "qty"}).AddRow("Burger", 4))

	router := httpapi.NewRouter(newHandler(db, rdb, time.Minute))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/analytics/top-today?limit=3", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var ranks []domain.ProductRank
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&ranks))
	assert.Equal(t, []domain.ProductRank{{Name: "Burger", Value: 4}}, ranks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopTodayPrefersLiveRanking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	today := time.Now().Format("2006-01-02")
	mr.ZAdd(storage.DailyProductsKey(today), 2, "Fries")
	mr.ZAdd(storage.DailyProductsKey(today), 7, "Cola")

	router := httpapi.NewRouter(newHandler(db, rdb, time.Minute))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/analytics/top-today", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var ranks []domain.ProductRank
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&ranks))
	assert.Equal(t, []domain.ProductRank{{Name: "Cola", Value: 7}, {Name: "Fries", Value: 2}}, ranks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardCacheTTL(t *testing.T) {
	testCases := []struct {
		name   string
		broker string
		ttl    string
		want   time.Duration
	}{
		{name: "kafka on", broker: "kafka:9092", want: 30 * time.Second},
		{name: "kafka off", broker: "", want: 0},
		{name: "explicit ttl without kafka", broker: "", ttl: "5s", want: 5 * time.Second},
		{name: "explicitly disabled", broker: "kafka:9092", ttl: "0s", want: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("KAFKA_BROKER", testCase.broker)
			t.Setenv("DASHBOARD_CACHE_TTL", testCase.ttl)
			assert.Equal(t, testCase.want, dashboardCacheTTL())
		})
	}
}
