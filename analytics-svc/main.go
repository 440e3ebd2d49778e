package main

import (
	"database/sql"
	"log"
	"time"

	httpapi "pos-backend/analytics-svc/internal/api/http"
	"pos-backend/analytics-svc/internal/service"
	"pos-backend/analytics-svc/internal/storage"
	"pos-backend/config"

	"github.com/redis/go-redis/v9"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	ttl := dashboardCacheTTL()
	if ttl <= 0 {
		log.Printf("[analytics-svc] dashboard cache disabled")
	}
	httpapi.StartServer(":"+config.GetEnv("PORT", "8083"), httpapi.NewRouter(newHandler(db, rdb, ttl)))
}

// dashboardCacheTTL defaults to 30s only when Kafka is configured, since
// without agg-svc nothing bumps the ledger version on new orders.
func dashboardCacheTTL() time.Duration {
	fallback := time.Duration(0)
	if config.KafkaEnabled() {
		fallback = 30 * time.Second
	}
	return config.GetDuration("DASHBOARD_CACHE_TTL", fallback)
}

func newHandler(db *sql.DB, rdb *redis.Client, ttl time.Duration) *httpapi.Handler {
	cache := storage.NewRedisCache(rdb, ttl)
	svc := service.NewAnalyticsService(storage.NewPostgresRepository(db), cache)
	return httpapi.NewHandler(svc)
}
