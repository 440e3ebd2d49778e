package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_RoutesToConfiguredServices(t *testing.T) {
	pos := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "pos:"+r.URL.Path+":"+r.Header.Get("X-User-ID"))
	}))
	defer pos.Close()

	analytics := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "analytics:"+r.URL.Path)
	}))
	defer analytics.Close()

	t.Setenv("POS_SVC_URL", pos.URL)
	t.Setenv("ANALYTICS_SVC_URL", analytics.URL)
	t.Setenv("TRUST_USER_HEADER", "true")
	handler := newHandler()

	testCases := []struct {
		path     string
		expected string
	}{
		{"/api/orders", "pos:/api/orders:waiter-7"},
		{"/api/analytics/dashboard", "analytics:/api/analytics/dashboard"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			req.Header.Set("X-User-ID", "waiter-7")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, testCase.expected, rr.Body.String())
		})
	}
}

func TestNewHandler_DropsUserHeaderByDefault(t *testing.T) {
	pos := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "user="+r.Header.Get("X-User-ID"))
	}))
	defer pos.Close()

	t.Setenv("POS_SVC_URL", pos.URL)
	t.Setenv("TRUST_USER_HEADER", "")

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("X-User-ID", "waiter-7")
	rr := httptest.NewRecorder()
	newHandler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user=", rr.Body.String())
}

func TestNewHandler_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/orders/1/status", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rr := httptest.NewRecorder()

	newHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
