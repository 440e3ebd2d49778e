package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"pos-backend/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	now    func() time.Time
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		now:    time.Now,
	}
}

func (c *Consumer) WithClock(now func() time.Time) *Consumer {
	c.now = now
	return c
}

// Start reads until ctx is cancelled or the reader is closed.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				log.Println("[agg-svc] consumer stopped")
				return
			}
			log.Printf("[agg-svc] error reading message: %v", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			log.Printf("[agg-svc] WARNING: skipping malformed message at offset %d: %v", message.Offset, err)
			continue
		}

		if err := c.ProcessOrderEvent(ctx, evt); err != nil {
			log.Printf("[agg-svc] error processing %s for %s: %v", evt.Type, evt.OrderNumber, err)
		}
	}
}

func (c *Consumer) ProcessOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	switch evt.Type {
	case domain.EventOrderCreated:
		if err := c.Store.RecordSale(ctx, c.day(evt), evt.Items); err != nil {
			return err
		}
	case domain.EventOrderStatusChanged:
		// rankings are unaffected; only the cached dashboard is stale
	default:
		return nil
	}

	if err := c.Store.InvalidateDashboard(ctx); err != nil {
		return err
	}
	log.Printf("[agg-svc] processed %s for %s", evt.Type, evt.OrderNumber)
	return nil
}

// day is the local date the order belongs to.
func (c *Consumer) day(evt domain.OrderEvent) string {
	at := evt.Timestamp
	if at.IsZero() {
		at = c.now()
	}
	return at.In(time.Local).Format("2006-01-02")
}
