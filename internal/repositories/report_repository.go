package repositories

import (
	"database/sql"
	"fmt"

	"retail_pos_backend/internal/models"

	"github.com/shopspring/decimal"
)

// ReportRepository runs the read-only aggregation queries behind the
// dashboard and the per-user reports. All results are point-in-time
// snapshots; nothing is cached or incrementally maintained.
type ReportRepository interface {
	OrderTotals() (totalOrders int64, totalRevenue decimal.Decimal, err error)
	TopSellingProducts(limit int) ([]models.ProductSales, error)
	SalesByDate() ([]models.DailySales, error)
	FrequentItemsByUser(userID int64, limit int) ([]models.FrequentItem, error)
}

type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) OrderTotals() (int64, decimal.Decimal, error) {
	var totalOrders int64
	var totalRevenue decimal.Decimal
	// COALESCE keeps the zero-orders case a plain 0 instead of a NULL scan error.
	query := `SELECT COUNT(*), COALESCE(SUM(total_price), 0) FROM orders`
	if err := r.db.QueryRow(query).Scan(&totalOrders, &totalRevenue); err != nil {
		return 0, decimal.Zero, fmt.Errorf("%w: aggregating revenue: %v", ErrDatabaseError, err)
	}
	return totalOrders, totalRevenue, nil
}

func (r *reportRepository) TopSellingProducts(limit int) ([]models.ProductSales, error) {
	top := []models.ProductSales{}
	query := `SELECT name, SUM(qty) AS total_sold
	          FROM order_items
	          GROUP BY name
	          ORDER BY total_sold DESC
	          LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: getting top selling products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.ProductSales
		if err := rows.Scan(&row.Name, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("%w: scanning top seller row: %v", ErrDatabaseError, err)
		}
		top = append(top, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating top seller rows: %v", ErrDatabaseError, err)
	}
	return top, nil
}

func (r *reportRepository) SalesByDate() ([]models.DailySales, error) {
	sales := []models.DailySales{}
	query := `SELECT to_char(created_at, 'YYYY-MM-DD') AS sale_date, SUM(total_price) AS total_sales
	          FROM orders
	          GROUP BY sale_date
	          ORDER BY sale_date ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: getting sales by date: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.DailySales
		if err := rows.Scan(&row.Date, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("%w: scanning daily sales row: %v", ErrDatabaseError, err)
		}
		sales = append(sales, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating daily sales rows: %v", ErrDatabaseError, err)
	}
	return sales, nil
}

func (r *reportRepository) FrequentItemsByUser(userID int64, limit int) ([]models.FrequentItem, error) {
	items := []models.FrequentItem{}
	query := `SELECT oi.product_id, MIN(oi.name) AS name, SUM(oi.qty) AS total_bought
	          FROM order_items oi
	          JOIN orders o ON oi.order_id = o.id
	          WHERE o.user_id = $1
	          GROUP BY oi.product_id
	          ORDER BY total_bought DESC
	          LIMIT $2`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: getting frequent items for user %d: %v", ErrDatabaseError, userID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.FrequentItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.TotalBought); err != nil {
			return nil, fmt.Errorf("%w: scanning frequent item row: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating frequent item rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}
