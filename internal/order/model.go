package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCustomerName is shown when an order was taken without a customer name.
const DefaultCustomerName = "Cliente"

// CatalogEntry is the snapshot of a menu dish taken when it is added to an order.
type CatalogEntry struct {
	ID          string
	Name        string
	UnitPrice   decimal.Decimal
	CategoryTag string
}

// Catalog resolves dishes by id. Implemented by the menu service.
type Catalog interface {
	Resolve(ctx context.Context, id string) (CatalogEntry, error)
}

// LineItem is one dish plus quantity. Name and UnitPrice are copied at add time and never
// follow later catalog changes.
type LineItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID            uuid.UUID
	Number        int64
	Label         string
	CustomerName  *string
	TableID       string
	Lines         []LineItem
	Status        Status
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	CompletedAt   *time.Time
	StaffID       string
	Version       int
}

// Total is always derived from the lines.
func (o *Order) Total() decimal.Decimal {
	return Total(o.Lines)
}

func (o *Order) DisplayCustomer() string {
	if o.CustomerName == nil {
		return DefaultCustomerName
	}
	return *o.CustomerName
}

// Clone returns a deep copy so repositories never share slices or pointers with callers.
func (o *Order) Clone() *Order {
	c := *o
	c.Lines = append([]LineItem(nil), o.Lines...)
	if o.CustomerName != nil {
		name := *o.CustomerName
		c.CustomerName = &name
	}
	if o.CompletedAt != nil {
		at := *o.CompletedAt
		c.CompletedAt = &at
	}
	return &c
}

// FormatLabel renders a sequence number as the human readable order label, e.g. 7 -> "#007".
func FormatLabel(n int64) string {
	return fmt.Sprintf("#%03d", n)
}

type ItemInput struct {
	DishID   string
	Quantity int
}

type CreateOrderInput struct {
	TableID      string
	CustomerName *string
	Items        []ItemInput
	StaffID      string
}

// ImportOrderInput carries an order whose lines were priced elsewhere.
type ImportOrderInput struct {
	TableID       string
	CustomerName  *string
	StaffID       string
	Lines         []LineItem
	Status        Status
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

type Filter struct {
	Status        *Status
	PaymentStatus *PaymentStatus
	TableID       *string
}

func (f Filter) Matches(o *Order) bool {
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.PaymentStatus != nil && o.PaymentStatus != *f.PaymentStatus {
		return false
	}
	if f.TableID != nil && o.TableID != *f.TableID {
		return false
	}
	return true
}
