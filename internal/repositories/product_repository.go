package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"retail_pos_backend/internal/models"

	"github.com/shopspring/decimal"
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	CreateProduct(executor SQLExecutor, product *models.Product) (int64, error)
	GetProducts() ([]models.Product, error)
	GetProductByID(productID int64) (*models.Product, error)
	ExistsByNameOrBarcode(name, barcode string) (bool, error)
	UpdateProduct(executor SQLExecutor, product *models.Product) error
	DeleteProduct(executor SQLExecutor, productID int64) (int64, error)

	// AdjustStock applies an atomic stock delta in a single statement so
	// concurrent adjustments cannot lose updates. A negative delta only
	// applies when the product has sufficient stock; the returned count is
	// the number of rows affected (0 means missing product or not enough
	// stock).
	AdjustStock(executor SQLExecutor, productID int64, delta int) (int64, error)

	// ReceiveStock increments stock and overwrites the recorded cost price
	// in one statement, for purchase receipts.
	ReceiveStock(executor SQLExecutor, productID int64, qty int, costPrice decimal.Decimal) (int64, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, user_id, name, category, barcode, mrp, cost_price, stock, tax_rate, image, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...interface{}) error }, p *models.Product) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Category, &p.Barcode, &p.MRP, &p.CostPrice,
		&p.Stock, &p.TaxRate, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *productRepository) CreateProduct(executor SQLExecutor, product *models.Product) (int64, error) {
	query := `INSERT INTO products
	            (user_id, name, category, barcode, mrp, cost_price, stock, tax_rate, image, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id`

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	err := executor.QueryRow(query,
		product.UserID, product.Name, product.Category, product.Barcode,
		product.MRP, product.CostPrice, product.Stock, product.TaxRate, product.Image,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: product name or barcode", ErrDuplicateKey)
		}
		return 0, fmt.Errorf("%w: creating product: %v", ErrDatabaseError, err)
	}
	return product.ID, nil
}

func (r *productRepository) GetProducts() ([]models.Product, error) {
	products := []models.Product{}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: getting products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("%w: scanning product row: %v", ErrDatabaseError, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}

func (r *productRepository) GetProductByID(productID int64) (*models.Product, error) {
	p := &models.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := scanProduct(r.db.QueryRow(query, productID), p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product by ID %d: %v", ErrDatabaseError, productID, err)
	}
	return p, nil
}

func (r *productRepository) ExistsByNameOrBarcode(name, barcode string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE name = $1 OR barcode = $2)`
	if err := r.db.QueryRow(query, name, barcode).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: checking product uniqueness: %v", ErrDatabaseError, err)
	}
	return exists, nil
}

func (r *productRepository) UpdateProduct(executor SQLExecutor, product *models.Product) error {
	query := `UPDATE products
	          SET name = $1, category = $2, barcode = $3, mrp = $4, cost_price = $5,
	              stock = $6, tax_rate = $7, image = $8, updated_at = $9
	          WHERE id = $10`

	product.UpdatedAt = time.Now()

	result, err := executor.Exec(query,
		product.Name, product.Category, product.Barcode, product.MRP, product.CostPrice,
		product.Stock, product.TaxRate, product.Image, product.UpdatedAt, product.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product name or barcode", ErrDuplicateKey)
		}
		return fmt.Errorf("%w: updating product %d: %v", ErrDatabaseError, product.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: updating product %d: %v", ErrDatabaseError, product.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) DeleteProduct(executor SQLExecutor, productID int64) (int64, error) {
	result, err := executor.Exec(`DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting product %d: %v", ErrDatabaseError, productID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: deleting product %d: %v", ErrDatabaseError, productID, err)
	}
	return rowsAffected, nil
}

func (r *productRepository) AdjustStock(executor SQLExecutor, productID int64, delta int) (int64, error) {
	// Single-statement conditional update: the stock check and the write
	// happen atomically, so two concurrent decrements cannot both read the
	// same starting value and the counter can never go negative.
	query := `UPDATE products
	          SET stock = stock + $2, updated_at = $3
	          WHERE id = $1 AND stock + $2 >= 0`

	result, err := executor.Exec(query, productID, delta, time.Now())
	if err != nil {
		return 0, fmt.Errorf("%w: adjusting stock for product %d: %v", ErrDatabaseError, productID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: adjusting stock for product %d: %v", ErrDatabaseError, productID, err)
	}
	return rowsAffected, nil
}

func (r *productRepository) ReceiveStock(executor SQLExecutor, productID int64, qty int, costPrice decimal.Decimal) (int64, error) {
	query := `UPDATE products
	          SET stock = stock + $2, cost_price = $3, updated_at = $4
	          WHERE id = $1`

	result, err := executor.Exec(query, productID, qty, costPrice, time.Now())
	if err != nil {
		return 0, fmt.Errorf("%w: receiving stock for product %d: %v", ErrDatabaseError, productID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: receiving stock for product %d: %v", ErrDatabaseError, productID, err)
	}
	return rowsAffected, nil
}
