package client

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Client is a customer record. TotalOrders and TotalSpent are display counters that are
// not recomputed from orders; report.ClientStats derives the real figures.
type Client struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     *string         `json:"address,omitempty"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	LastVisit   time.Time       `json:"last_visit"`
	Status      Status          `json:"status"`
}

type ClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address *string
}
