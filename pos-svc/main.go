package main

import (
	"context"
	"log"

	"pos-backend/config"
	httpapi "pos-backend/pos-svc/internal/api/http"
	"pos-backend/pos-svc/internal/service"
	"pos-backend/pos-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var publisher service.OrderPublisher
	if config.KafkaEnabled() {
		writer := config.NewKafkaWriter(config.OrdersTopic())
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Printf("[pos-svc] WARNING: KAFKA_BROKER not set, order events disabled")
	}

	handler := newHandler(repo, publisher)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler))
}

func newHandler(repo *storage.PostgresRepository, publisher service.OrderPublisher) *httpapi.Handler {
	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("RECEIPT_BASE_URL", "http://localhost")}

	orders := service.NewOrderService(repo, repo, repo, publisher, qr).
		WithPolicy(service.PolicyByName(config.GetEnv("ORDER_STATUS_POLICY", "permissive")))

	return httpapi.NewHandler(
		orders,
		service.NewCategoryService(repo),
		service.NewProductService(repo),
		service.NewTableService(repo),
		service.NewCustomerService(repo),
	)
}
