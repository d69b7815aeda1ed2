package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// --- Custom Service Errors ---
var (
	ErrDiscountNotFound = errors.New("discount not found")
	ErrDiscountExists   = errors.New("discount code already exists")
)

// --- Data Transfer Objects (DTOs) ---

// CreateDiscountRequest DTO. The code is normalized to upper case before
// storage.
type CreateDiscountRequest struct {
	Code      string          `json:"code" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Value     decimal.Decimal `json:"value"`
	ExpiresAt time.Time       `json:"expires_at" binding:"required"`
}

// --- DiscountService Interface ---
type DiscountService interface {
	CreateDiscount(req CreateDiscountRequest) (*models.Discount, error)
	GetDiscounts() ([]models.Discount, error)
	DeleteDiscount(discountID int64) error

	// ValidateDiscount returns the discount record only when a record with
	// the exact (case-normalized) code exists, is active, and expires
	// strictly in the future.
	ValidateDiscount(code string) (*models.Discount, error)
}

// --- discountService Implementation ---
type discountService struct {
	discountRepo repositories.DiscountRepository
	db           *sql.DB
}

// NewDiscountService creates a new instance of DiscountService.
func NewDiscountService(discountRepo repositories.DiscountRepository, db *sql.DB) DiscountService {
	return &discountService{discountRepo: discountRepo, db: db}
}

func (s *discountService) CreateDiscount(req CreateDiscountRequest) (*models.Discount, error) {
	if !models.IsValidDiscountType(req.Type) {
		return nil, fmt.Errorf("%w: discount type must be fixed or percentage", ErrValidation)
	}
	if req.Value.IsNegative() {
		return nil, fmt.Errorf("%w: discount value cannot be negative", ErrValidation)
	}

	discount := &models.Discount{
		Code:      strings.ToUpper(strings.TrimSpace(req.Code)),
		Type:      req.Type,
		Value:     req.Value,
		ExpiresAt: req.ExpiresAt,
		IsActive:  true,
	}

	if _, err := s.discountRepo.CreateDiscount(s.db, discount); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDiscountExists
		}
		return nil, fmt.Errorf("failed to create discount: %w", err)
	}
	return discount, nil
}

func (s *discountService) GetDiscounts() ([]models.Discount, error) {
	discounts, err := s.discountRepo.GetDiscounts()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discounts: %w", err)
	}
	return discounts, nil
}

func (s *discountService) DeleteDiscount(discountID int64) error {
	rowsAffected, err := s.discountRepo.DeleteDiscount(s.db, discountID)
	if err != nil {
		return fmt.Errorf("failed to delete discount %d: %w", discountID, err)
	}
	if rowsAffected == 0 {
		return ErrDiscountNotFound
	}
	return nil
}

func (s *discountService) ValidateDiscount(code string) (*models.Discount, error) {
	discount, err := s.discountRepo.GetDiscountByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDiscountInvalid
		}
		return nil, fmt.Errorf("failed to look up discount code: %w", err)
	}
	if !discount.Usable(time.Now()) {
		return nil, ErrDiscountInvalid
	}
	return discount, nil
}
