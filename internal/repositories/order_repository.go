package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"retail_pos_backend/internal/models"
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	CreateOrder(executor SQLExecutor, order *models.Order) (int64, error)
	CreateOrderItem(executor SQLExecutor, item *models.OrderItem) (int64, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error)
	GetOrders() ([]models.Order, error)
	GetOrdersByUserID(userID int64) ([]models.Order, error)
	MarkOrderPaid(executor SQLExecutor, orderID int64, paidAt time.Time) error
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, user_id, payment_method, items_price, tax_price, discount_amount, total_price, is_paid, paid_at, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...interface{}) error }, o *models.Order) error {
	return row.Scan(
		&o.ID, &o.UserID, &o.PaymentMethod, &o.ItemsPrice, &o.TaxPrice,
		&o.DiscountAmount, &o.TotalPrice, &o.IsPaid, &o.PaidAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
}

func (r *orderRepository) CreateOrder(executor SQLExecutor, order *models.Order) (int64, error) {
	query := `INSERT INTO orders
	            (user_id, payment_method, items_price, tax_price, discount_amount, total_price,
	             is_paid, paid_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id`

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	err := executor.QueryRow(query,
		order.UserID, order.PaymentMethod, order.ItemsPrice, order.TaxPrice,
		order.DiscountAmount, order.TotalPrice, order.IsPaid, order.PaidAt,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating order: %v", ErrDatabaseError, err)
	}
	return order.ID, nil
}

func (r *orderRepository) CreateOrderItem(executor SQLExecutor, item *models.OrderItem) (int64, error) {
	query := `INSERT INTO order_items (order_id, product_id, name, barcode, qty, unit_price)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := executor.QueryRow(query,
		item.OrderID, item.ProductID, item.Name, item.Barcode, item.Qty, item.UnitPrice,
	).Scan(&item.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating order item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *orderRepository) GetOrderByID(orderID int64) (*models.Order, error) {
	order := &models.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	err := scanOrder(r.db.QueryRow(query, orderID), order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order by ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return order, nil
}

func (r *orderRepository) GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	query := `SELECT id, order_id, product_id, name, barcode, qty, unit_price
	          FROM order_items
	          WHERE order_id = $1
	          ORDER BY id ASC`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting order items for order %d: %v", ErrDatabaseError, orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Barcode, &item.Qty, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("%w: scanning order item row: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order item rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *orderRepository) GetOrders() ([]models.Order, error) {
	return r.queryOrders(`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (r *orderRepository) GetOrdersByUserID(userID int64) ([]models.Order, error) {
	return r.queryOrders(`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *orderRepository) queryOrders(query string, args ...interface{}) ([]models.Order, error) {
	orders := []models.Order{}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var order models.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, fmt.Errorf("%w: scanning order row: %v", ErrDatabaseError, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, nil
}

func (r *orderRepository) MarkOrderPaid(executor SQLExecutor, orderID int64, paidAt time.Time) error {
	query := `UPDATE orders
	          SET is_paid = TRUE, paid_at = $2, updated_at = $3
	          WHERE id = $1 AND is_paid = FALSE`

	result, err := executor.Exec(query, orderID, paidAt, time.Now())
	if err != nil {
		return fmt.Errorf("%w: marking order %d paid: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: marking order %d paid: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
