package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dashboardBody = `{"status":"success","data":{
	"totalRevenue":"57.5","totalOrders":4,"todayRevenue":"15","todayOrders":2,
	"recentSales":[{"order_number":"ORD-ABC123","order_type":"dine-in","payment_method":"cash","status":"pending","total_amount":"23.5","created_at":"2024-01-10T12:00:00Z"}],
	"revenueData":[{"name":"Thu","value":"0"},{"name":"Wed","value":"15"}],
	"topProducts":[{"name":"Burger","value":6},{"name":"Fries","value":2}]}}`

func TestFetchDashboard(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(dashboardBody))
	}))
	defer srv.Close()

	d, err := fetchDashboard(context.Background(), srv.Client(), srv.URL+"/")
	require.NoError(t, err)

	assert.Equal(t, "/api/analytics/dashboard", path)
	assert.Equal(t, "57.50", d.TotalRevenue.StringFixed(2))
	assert.Equal(t, int64(4), d.TotalOrders)
	require.Len(t, d.TopProducts, 2)
	assert.Equal(t, "Burger", d.TopProducts[0].Name)
}

func TestFetchDashboard_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := fetchDashboard(context.Background(), srv.Client(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build dashboard")
}

func TestRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dashboardBody))
	}))
	defer srv.Close()

	d, err := fetchDashboard(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, render(&out, d))

	text := out.String()
	for _, want := range []string{"57.50", "15.00", "Burger", "Fries", "Wed", "ORD-ABC123", "Top products"} {
		assert.Contains(t, text, want)
	}
}

func TestRender_EmptyDashboard(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render(&out, &dashboard{}))

	assert.Contains(t, out.String(), "0.00")
	assert.NotContains(t, out.String(), "Recent sales")
}
