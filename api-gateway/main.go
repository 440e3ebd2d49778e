package main

import (
	"log"
	"net/http"

	"pos-backend/api-gateway/internal/gateway"
	"pos-backend/config"

	"github.com/rs/cors"
)

func main() {
	addr := ":" + config.GetEnv("PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, newHandler()))
}

func newHandler() http.Handler {
	gw := gateway.NewGateway(gateway.Config{
		PosSvcURL:       config.GetEnv("POS_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL: config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		TrustUserHeader: config.GetBool("TRUST_USER_HEADER", false),
	}, &http.Client{})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(gw.SetupRoutes())
}
