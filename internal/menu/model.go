package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dish is a sellable menu entry.
type Dish struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type DishInput struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Description *string
}

type Filter struct {
	Category *string
}

func (f Filter) Matches(d *Dish) bool {
	return f.Category == nil || d.Category == *f.Category
}
