package restaurant

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restaurant is one tenant account as seen from the super-admin view.
type Restaurant struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	AdminEmail        string          `json:"admin_email"`
	AdminPasswordHash string          `json:"-"`
	Address           string          `json:"address"`
	Phone             *string         `json:"phone,omitempty"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalOrders       int             `json:"total_orders"`
}

type RegisterInput struct {
	Name            string
	AdminEmail      string
	Password        string
	ConfirmPassword string
	Address         string
	Phone           *string
}

type Summary struct {
	Total       int             `json:"total"`
	Active      int             `json:"active"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalOrders int             `json:"total_orders"`
}
