package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pos-backend/agg-svc/internal/service"
	"pos-backend/agg-svc/internal/storage"
	"pos-backend/config"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic(), config.DefaultAggGroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, storage.NewStore(rdb)).Start(ctx)
}
