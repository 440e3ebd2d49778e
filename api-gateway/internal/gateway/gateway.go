package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// UserHeader carries the caller identity that pos-svc records as created_by.
const UserHeader = "X-User-ID"

type Config struct {
	PosSvcURL       string
	AnalyticsSvcURL string
	// TrustUserHeader forwards a client-supplied X-User-ID. Leave it off
	// unless an authenticating proxy in front of the gateway sets the header.
	TrustUserHeader bool
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ProxyRequest replays r against targetURL with the same path, query,
// headers and body, and copies the upstream response back verbatim.
// X-User-ID is dropped unless the config trusts it.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	if !g.config.TrustUserHeader {
		req.Header.Del(UserHeader)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

// Upstream picks the service that owns path, or "" when nothing does.
func (g *Gateway) Upstream(path string) string {
	switch {
	case path == "/api/analytics" || strings.HasPrefix(path, "/api/analytics/"):
		return g.config.AnalyticsSvcURL
	case strings.HasPrefix(path, "/api/"):
		return g.config.PosSvcURL
	default:
		return ""
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("ROUTE: %s %s", r.Method, r.URL.Path)

	target := g.Upstream(r.URL.Path)
	if target == "" {
		http.Error(w, "route not found", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.NotFoundHandler = http.HandlerFunc(g.RouteHandler)
	return r
}
