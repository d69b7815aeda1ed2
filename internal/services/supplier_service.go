package services

import (
	"database/sql"
	"errors"
	"fmt"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/repositories"
)

// --- Custom Service Errors ---
var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSupplierExists   = errors.New("supplier with the same name already exists")
)

// --- Data Transfer Objects (DTOs) ---

// CreateSupplierRequest DTO.
type CreateSupplierRequest struct {
	Name          string  `json:"name" binding:"required"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}

// UpdateSupplierRequest DTO with key-presence partial-update semantics.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}

// --- SupplierService Interface ---
type SupplierService interface {
	CreateSupplier(req CreateSupplierRequest) (*models.Supplier, error)
	GetSuppliers() ([]models.Supplier, error)
	UpdateSupplier(supplierID int64, req UpdateSupplierRequest) (*models.Supplier, error)
	DeleteSupplier(supplierID int64) error
}

// --- supplierService Implementation ---
type supplierService struct {
	supplierRepo repositories.SupplierRepository
	db           *sql.DB
}

// NewSupplierService creates a new instance of SupplierService.
func NewSupplierService(supplierRepo repositories.SupplierRepository, db *sql.DB) SupplierService {
	return &supplierService{supplierRepo: supplierRepo, db: db}
}

func (s *supplierService) CreateSupplier(req CreateSupplierRequest) (*models.Supplier, error) {
	supplier := &models.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	}

	if _, err := s.supplierRepo.CreateSupplier(s.db, supplier); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrSupplierExists
		}
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) GetSuppliers() ([]models.Supplier, error) {
	suppliers, err := s.supplierRepo.GetSuppliers()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *supplierService) UpdateSupplier(supplierID int64, req UpdateSupplierRequest) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetSupplierByID(supplierID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to fetch supplier %d: %w", supplierID, err)
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = req.ContactPerson
	}
	if req.Phone != nil {
		supplier.Phone = req.Phone
	}
	if req.Email != nil {
		supplier.Email = req.Email
	}
	if req.Address != nil {
		supplier.Address = req.Address
	}

	if err := s.supplierRepo.UpdateSupplier(s.db, supplier); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrSupplierExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to update supplier %d: %w", supplierID, err)
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(supplierID int64) error {
	rowsAffected, err := s.supplierRepo.DeleteSupplier(s.db, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %d: %w", supplierID, err)
	}
	if rowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
