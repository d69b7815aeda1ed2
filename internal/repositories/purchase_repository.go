package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"retail_pos_backend/internal/models"
)

// PurchaseRepository defines the interface for purchase-related database operations.
type PurchaseRepository interface {
	CreatePurchase(executor SQLExecutor, purchase *models.Purchase) (int64, error)
	CreatePurchaseItem(executor SQLExecutor, item *models.PurchaseItem) (int64, error)
	GetPurchaseItemsByPurchaseID(purchaseID int64) ([]models.PurchaseItem, error)
}

type purchaseRepository struct {
	db *sql.DB
}

// NewPurchaseRepository creates a new instance of PurchaseRepository.
func NewPurchaseRepository(db *sql.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) CreatePurchase(executor SQLExecutor, purchase *models.Purchase) (int64, error) {
	query := `INSERT INTO purchases (user_id, supplier_id, total_cost, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	now := time.Now()
	purchase.CreatedAt = now
	purchase.UpdatedAt = now

	err := executor.QueryRow(query,
		purchase.UserID, purchase.SupplierID, purchase.TotalCost,
		purchase.CreatedAt, purchase.UpdatedAt,
	).Scan(&purchase.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating purchase: %v", ErrDatabaseError, err)
	}
	return purchase.ID, nil
}

func (r *purchaseRepository) CreatePurchaseItem(executor SQLExecutor, item *models.PurchaseItem) (int64, error) {
	query := `INSERT INTO purchase_items (purchase_id, product_id, name, qty, cost_price)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := executor.QueryRow(query,
		item.PurchaseID, item.ProductID, item.Name, item.Qty, item.CostPrice,
	).Scan(&item.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating purchase item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *purchaseRepository) GetPurchaseItemsByPurchaseID(purchaseID int64) ([]models.PurchaseItem, error) {
	items := []models.PurchaseItem{}
	query := `SELECT id, purchase_id, product_id, name, qty, cost_price
	          FROM purchase_items
	          WHERE purchase_id = $1
	          ORDER BY id ASC`

	rows, err := r.db.Query(query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting purchase items for purchase %d: %v", ErrDatabaseError, purchaseID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.PurchaseItem
		if err := rows.Scan(&item.ID, &item.PurchaseID, &item.ProductID, &item.Name, &item.Qty, &item.CostPrice); err != nil {
			return nil, fmt.Errorf("%w: scanning purchase item row: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating purchase item rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}
