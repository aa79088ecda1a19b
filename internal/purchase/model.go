package purchase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusReceived  Status = "RECEIVED"
	StatusCancelled Status = "CANCELLED"
)

var statusLabels = map[Status]string{
	StatusPending:   "Pendiente",
	StatusReceived:  "Recibido",
	StatusCancelled: "Cancelado",
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := statusLabels[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) Label() string {
	return statusLabels[s]
}

type Item struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Purchase is a supplier invoice. TotalAmount is always the sum of item totals.
type Purchase struct {
	ID            string          `json:"id"`
	Supplier      string          `json:"supplier"`
	InvoiceNumber string          `json:"invoice_number"`
	Items         []Item          `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Date          time.Time       `json:"date"`
	Status        Status          `json:"status"`
}

type ItemInput struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type PurchaseInput struct {
	Supplier      string
	InvoiceNumber string
	Items         []ItemInput
	// Date defaults to now.
	Date time.Time
	// Status defaults to pending.
	Status Status
}
