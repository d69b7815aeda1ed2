package services

import (
	"database/sql"
	"errors"
	"fmt"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/repositories"
	"retail_pos_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

// --- Custom Service Errors ---
var (
	ErrEmptyPurchase = errors.New("no purchase items")
)

// --- Data Transfer Objects (DTOs) ---

// CreatePurchaseItemRequest is one received line of a stock purchase.
type CreatePurchaseItemRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Qty       int             `json:"qty" binding:"required,gt=0"`
	CostPrice decimal.Decimal `json:"cost_price"`
}

// CreatePurchaseRequest is the stock-receipt payload.
type CreatePurchaseRequest struct {
	SupplierID    int64                       `json:"supplier_id" binding:"required"`
	PurchaseItems []CreatePurchaseItemRequest `json:"purchase_items" binding:"dive"`
	TotalCost     decimal.Decimal             `json:"total_cost"`
}

// --- PurchaseService Interface ---
type PurchaseService interface {
	CreatePurchase(userID int64, req CreatePurchaseRequest) (*models.Purchase, error)
}

// --- purchaseService Implementation ---
type purchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	productRepo  repositories.ProductRepository
	supplierRepo repositories.SupplierRepository
	db           *sql.DB
}

// NewPurchaseService creates a new instance of PurchaseService.
func NewPurchaseService(
	pr repositories.PurchaseRepository,
	prodRepo repositories.ProductRepository,
	sr repositories.SupplierRepository,
	db *sql.DB,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: pr,
		productRepo:  prodRepo,
		supplierRepo: sr,
		db:           db,
	}
}

// CreatePurchase persists the receipt, then increments each referenced
// product's stock and overwrites its cost price with the received cost, in
// list order (last write wins when a product appears twice). Items whose
// product has been deleted are skipped, best-effort.
func (s *purchaseService) CreatePurchase(userID int64, req CreatePurchaseRequest) (*models.Purchase, error) {
	if len(req.PurchaseItems) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrValidation, ErrEmptyPurchase)
	}

	if _, err := s.supplierRepo.GetSupplierByID(req.SupplierID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to look up supplier %d: %w", req.SupplierID, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	purchase := &models.Purchase{
		UserID:     userID,
		SupplierID: req.SupplierID,
		TotalCost:  req.TotalCost,
	}
	if _, err := s.purchaseRepo.CreatePurchase(tx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	for _, itemReq := range req.PurchaseItems {
		item := models.PurchaseItem{
			PurchaseID: purchase.ID,
			ProductID:  itemReq.ProductID,
			Name:       itemReq.Name,
			Qty:        itemReq.Qty,
			CostPrice:  itemReq.CostPrice,
		}
		if _, err := s.purchaseRepo.CreatePurchaseItem(tx, &item); err != nil {
			return nil, fmt.Errorf("failed to create purchase item for product %d: %w", itemReq.ProductID, err)
		}
		purchase.PurchaseItems = append(purchase.PurchaseItems, item)

		rowsAffected, err := s.productRepo.ReceiveStock(tx, itemReq.ProductID, itemReq.Qty, itemReq.CostPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to receive stock for product %d: %w", itemReq.ProductID, err)
		}
		if rowsAffected == 0 {
			utils.LogWarn("Skipping stock increment", map[string]interface{}{
				"purchase_id": purchase.ID,
				"product_id":  itemReq.ProductID,
				"qty":         itemReq.Qty,
				"reason":      "product missing",
			})
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit purchase transaction: %w", err)
	}
	return purchase, nil
}
