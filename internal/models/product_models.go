package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Stock is mutated by admin edits, by order
// payment (decrement) and by purchase receipt (increment + cost price
// overwrite). Name and barcode are unique across the catalog.
type Product struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id" db:"user_id"` // admin who added the product
	Name      string          `json:"name" db:"name"`
	Category  string          `json:"category" db:"category"`
	Barcode   string          `json:"barcode" db:"barcode"`
	MRP       decimal.Decimal `json:"mrp" db:"mrp"` // maximum retail price
	CostPrice decimal.Decimal `json:"cost_price" db:"cost_price"`
	Stock     int             `json:"stock" db:"stock"`
	TaxRate   decimal.Decimal `json:"tax_rate" db:"tax_rate"` // percentage
	Image     *string         `json:"image,omitempty" db:"image"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
