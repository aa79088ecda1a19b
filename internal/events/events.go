package events

import (
	"context"
	"time"
)

type EventType string

const (
	OrderCreated        EventType = "created"
	OrderStatusChanged  EventType = "status_changed"
	OrderPaymentChanged EventType = "payment_changed"
	OrderLinesEdited    EventType = "lines_edited"
	OrderDeleted        EventType = "deleted"
)

type OrderEvent struct {
	OrderID       string    `json:"order_id"`
	Label         string    `json:"label"`
	Type          EventType `json:"type"`
	TableID       string    `json:"table_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Total         string    `json:"total"`
	Occurred      time.Time `json:"occurred"`
}

// Publisher hands order events to whoever listens (kitchen display, reporting).
type Publisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, OrderEvent) error { return nil }
