package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"retail_pos_backend/internal/models"
)

// DiscountRepository defines the interface for discount-related database operations.
type DiscountRepository interface {
	CreateDiscount(executor SQLExecutor, discount *models.Discount) (int64, error)
	GetDiscounts() ([]models.Discount, error)
	GetDiscountByCode(code string) (*models.Discount, error)
	DeleteDiscount(executor SQLExecutor, discountID int64) (int64, error)
}

type discountRepository struct {
	db *sql.DB
}

// NewDiscountRepository creates a new instance of DiscountRepository.
func NewDiscountRepository(db *sql.DB) DiscountRepository {
	return &discountRepository{db: db}
}

const discountColumns = `id, code, type, value, expires_at, is_active, created_at, updated_at`

func scanDiscount(row interface{ Scan(dest ...interface{}) error }, d *models.Discount) error {
	return row.Scan(
		&d.ID, &d.Code, &d.Type, &d.Value, &d.ExpiresAt, &d.IsActive,
		&d.CreatedAt, &d.UpdatedAt,
	)
}

func (r *discountRepository) CreateDiscount(executor SQLExecutor, discount *models.Discount) (int64, error) {
	query := `INSERT INTO discounts (code, type, value, expires_at, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	now := time.Now()
	discount.CreatedAt = now
	discount.UpdatedAt = now

	err := executor.QueryRow(query,
		discount.Code, discount.Type, discount.Value, discount.ExpiresAt, discount.IsActive,
		discount.CreatedAt, discount.UpdatedAt,
	).Scan(&discount.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: discount code %s", ErrDuplicateKey, discount.Code)
		}
		return 0, fmt.Errorf("%w: creating discount: %v", ErrDatabaseError, err)
	}
	return discount.ID, nil
}

func (r *discountRepository) GetDiscounts() ([]models.Discount, error) {
	discounts := []models.Discount{}
	query := `SELECT ` + discountColumns + ` FROM discounts ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: getting discounts: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var d models.Discount
		if err := scanDiscount(rows, &d); err != nil {
			return nil, fmt.Errorf("%w: scanning discount row: %v", ErrDatabaseError, err)
		}
		discounts = append(discounts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating discount rows: %v", ErrDatabaseError, err)
	}
	return discounts, nil
}

func (r *discountRepository) GetDiscountByCode(code string) (*models.Discount, error) {
	d := &models.Discount{}
	query := `SELECT ` + discountColumns + ` FROM discounts WHERE code = $1`
	err := scanDiscount(r.db.QueryRow(query, code), d)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting discount by code: %v", ErrDatabaseError, err)
	}
	return d, nil
}

func (r *discountRepository) DeleteDiscount(executor SQLExecutor, discountID int64) (int64, error) {
	result, err := executor.Exec(`DELETE FROM discounts WHERE id = $1`, discountID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting discount %d: %v", ErrDatabaseError, discountID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: deleting discount %d: %v", ErrDatabaseError, discountID, err)
	}
	return rowsAffected, nil
}
