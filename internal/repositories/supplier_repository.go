package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"retail_pos_backend/internal/models"
)

// SupplierRepository defines the interface for supplier-related database operations.
type SupplierRepository interface {
	CreateSupplier(executor SQLExecutor, supplier *models.Supplier) (int64, error)
	GetSuppliers() ([]models.Supplier, error)
	GetSupplierByID(supplierID int64) (*models.Supplier, error)
	UpdateSupplier(executor SQLExecutor, supplier *models.Supplier) error
	DeleteSupplier(executor SQLExecutor, supplierID int64) (int64, error)
}

type supplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository creates a new instance of SupplierRepository.
func NewSupplierRepository(db *sql.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

const supplierColumns = `id, name, contact_person, phone, email, address, created_at, updated_at`

func scanSupplier(row interface{ Scan(dest ...interface{}) error }, s *models.Supplier) error {
	return row.Scan(
		&s.ID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email, &s.Address,
		&s.CreatedAt, &s.UpdatedAt,
	)
}

func (r *supplierRepository) CreateSupplier(executor SQLExecutor, supplier *models.Supplier) (int64, error) {
	query := `INSERT INTO suppliers (name, contact_person, phone, email, address, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	now := time.Now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	err := executor.QueryRow(query,
		supplier.Name, supplier.ContactPerson, supplier.Phone, supplier.Email, supplier.Address,
		supplier.CreatedAt, supplier.UpdatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: supplier name %s", ErrDuplicateKey, supplier.Name)
		}
		return 0, fmt.Errorf("%w: creating supplier: %v", ErrDatabaseError, err)
	}
	return supplier.ID, nil
}

func (r *supplierRepository) GetSuppliers() ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: getting suppliers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Supplier
		if err := scanSupplier(rows, &s); err != nil {
			return nil, fmt.Errorf("%w: scanning supplier row: %v", ErrDatabaseError, err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating supplier rows: %v", ErrDatabaseError, err)
	}
	return suppliers, nil
}

func (r *supplierRepository) GetSupplierByID(supplierID int64) (*models.Supplier, error) {
	s := &models.Supplier{}
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	err := scanSupplier(r.db.QueryRow(query, supplierID), s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting supplier by ID %d: %v", ErrDatabaseError, supplierID, err)
	}
	return s, nil
}

func (r *supplierRepository) UpdateSupplier(executor SQLExecutor, supplier *models.Supplier) error {
	query := `UPDATE suppliers
	          SET name = $1, contact_person = $2, phone = $3, email = $4, address = $5, updated_at = $6
	          WHERE id = $7`

	supplier.UpdatedAt = time.Now()

	result, err := executor.Exec(query,
		supplier.Name, supplier.ContactPerson, supplier.Phone, supplier.Email, supplier.Address,
		supplier.UpdatedAt, supplier.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: supplier name %s", ErrDuplicateKey, supplier.Name)
		}
		return fmt.Errorf("%w: updating supplier %d: %v", ErrDatabaseError, supplier.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: updating supplier %d: %v", ErrDatabaseError, supplier.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *supplierRepository) DeleteSupplier(executor SQLExecutor, supplierID int64) (int64, error) {
	result, err := executor.Exec(`DELETE FROM suppliers WHERE id = $1`, supplierID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting supplier %d: %v", ErrDatabaseError, supplierID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: deleting supplier %d: %v", ErrDatabaseError, supplierID, err)
	}
	return rowsAffected, nil
}
