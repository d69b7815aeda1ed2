package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a stock-receipt record. Creating one increments the stock of
// each referenced product and overwrites its recorded cost price.
type Purchase struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id" db:"user_id"` // admin who recorded the receipt
	SupplierID    int64           `json:"supplier_id" db:"supplier_id"`
	TotalCost     decimal.Decimal `json:"total_cost" db:"total_cost"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
	PurchaseItems []PurchaseItem  `json:"purchase_items,omitempty"`
}

// PurchaseItem is one received line. Name is a snapshot; ProductID carries
// no foreign key so historical purchases survive product deletion.
type PurchaseItem struct {
	ID         int64           `json:"id"`
	PurchaseID int64           `json:"purchase_id" db:"purchase_id"`
	ProductID  int64           `json:"product_id" db:"product_id"`
	Name       string          `json:"name" db:"name"`
	Qty        int             `json:"qty" db:"qty"`
	CostPrice  decimal.Decimal `json:"cost_price" db:"cost_price"`
}
