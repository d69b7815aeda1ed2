package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a checkout record. Line items are immutable once created; the
// only mutation after creation is the unpaid -> paid transition.
type Order struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id" db:"user_id"`
	PaymentMethod  string          `json:"payment_method" db:"payment_method"`
	ItemsPrice     decimal.Decimal `json:"items_price" db:"items_price"`
	TaxPrice       decimal.Decimal `json:"tax_price" db:"tax_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount" db:"discount_amount"`
	TotalPrice     decimal.Decimal `json:"total_price" db:"total_price"`
	IsPaid         bool            `json:"is_paid" db:"is_paid"`
	PaidAt         *time.Time      `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
	OrderItems     []OrderItem     `json:"order_items,omitempty"`
}

// OrderItem is one line of an order. Name, barcode and unit price are
// snapshots taken at checkout so history survives later product edits or
// deletion. ProductID is deliberately unconstrained for the same reason.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id" db:"order_id"`
	ProductID int64           `json:"product_id" db:"product_id"`
	Name      string          `json:"name" db:"name"`
	Barcode   string          `json:"barcode" db:"barcode"`
	Qty       int             `json:"qty" db:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price" db:"unit_price"`
}
