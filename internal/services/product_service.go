package services

import (
	"database/sql"
	"errors"
	"fmt"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// --- Custom Service Errors ---
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product with the same name or barcode already exists")
)

// --- Data Transfer Objects (DTOs) ---

// CreateProductRequest DTO.
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category" binding:"required"`
	Barcode   string          `json:"barcode" binding:"required"`
	MRP       decimal.Decimal `json:"mrp"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Stock     int             `json:"stock" binding:"gte=0"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Image     *string         `json:"image"`
}

// UpdateProductRequest DTO. Every field is a pointer: an absent JSON key
// leaves the stored value untouched, a present key (including zero or
// empty string) overwrites it.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	Barcode   *string          `json:"barcode"`
	MRP       *decimal.Decimal `json:"mrp"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Stock     *int             `json:"stock"`
	TaxRate   *decimal.Decimal `json:"tax_rate"`
	Image     *string          `json:"image"`
}

// --- ProductService Interface ---
type ProductService interface {
	CreateProduct(adminID int64, req CreateProductRequest) (*models.Product, error)
	GetProducts() ([]models.Product, error)
	GetProductByID(productID int64) (*models.Product, error)
	UpdateProduct(productID int64, req UpdateProductRequest) (*models.Product, error)
	DeleteProduct(productID int64) error
}

// --- productService Implementation ---
type productService struct {
	productRepo repositories.ProductRepository
	db          *sql.DB
}

// NewProductService creates a new instance of ProductService.
func NewProductService(productRepo repositories.ProductRepository, db *sql.DB) ProductService {
	return &productService{productRepo: productRepo, db: db}
}

func (s *productService) CreateProduct(adminID int64, req CreateProductRequest) (*models.Product, error) {
	exists, err := s.productRepo.ExistsByNameOrBarcode(req.Name, req.Barcode)
	if err != nil {
		return nil, fmt.Errorf("failed to check product uniqueness: %w", err)
	}
	if exists {
		return nil, ErrProductExists
	}

	product := &models.Product{
		UserID:    adminID,
		Name:      req.Name,
		Category:  req.Category,
		Barcode:   req.Barcode,
		MRP:       req.MRP,
		CostPrice: req.CostPrice,
		Stock:     req.Stock,
		TaxRate:   req.TaxRate,
		Image:     req.Image,
	}

	if _, err := s.productRepo.CreateProduct(s.db, product); err != nil {
		// The uniqueness pre-check races with concurrent creates; the
		// constraint violation is mapped to the same conflict error.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrProductExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *productService) GetProducts() ([]models.Product, error) {
	products, err := s.productRepo.GetProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (s *productService) GetProductByID(productID int64) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product %d: %w", productID, err)
	}
	return product, nil
}

// UpdateProduct applies a partial update: only fields whose keys were
// present in the request overwrite the stored values.
func (s *productService) UpdateProduct(productID int64, req UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if req.MRP != nil {
		product.MRP = *req.MRP
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock cannot be negative", ErrValidation)
		}
		product.Stock = *req.Stock
	}
	if req.TaxRate != nil {
		product.TaxRate = *req.TaxRate
	}
	if req.Image != nil {
		product.Image = req.Image
	}

	if err := s.productRepo.UpdateProduct(s.db, product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrProductExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(productID int64) error {
	rowsAffected, err := s.productRepo.DeleteProduct(s.db, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
