package service

import (
	"context"

	"pos-backend/agg-svc/internal/domain"
	"pos-backend/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordSale(ctx context.Context, day string, items []domain.EventItem) error
	InvalidateDashboard(ctx context.Context) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
