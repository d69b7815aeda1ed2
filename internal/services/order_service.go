package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/repositories"
	"retail_pos_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

// --- Custom Service Errors ---
var (
	ErrEmptyOrder       = errors.New("no order items")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderAlreadyPaid = errors.New("order is already paid")
	ErrDiscountInvalid  = errors.New("invalid or expired discount code")
)

// --- Data Transfer Objects (DTOs) ---

// CreateOrderItemRequest is one cart line at checkout. Name, barcode and
// unit price are snapshots supplied by the billing terminal.
type CreateOrderItemRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Barcode   string          `json:"barcode"`
	Qty       int             `json:"qty" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest is the checkout payload. DiscountCode is optional;
// when present the discount amount is recomputed server-side from the
// stored discount record, and any client-computed amount is ignored.
type CreateOrderRequest struct {
	OrderItems    []CreateOrderItemRequest `json:"order_items" binding:"dive"`
	PaymentMethod string                   `json:"payment_method" binding:"required"`
	ItemsPrice    decimal.Decimal          `json:"items_price"`
	TaxPrice      decimal.Decimal          `json:"tax_price"`
	DiscountCode  *string                  `json:"discount_code"`
}

// --- OrderService Interface ---
type OrderService interface {
	CreateOrder(userID int64, req CreateOrderRequest) (*models.Order, error)
	PayOrder(orderID int64) (*models.Order, error)
	GetOrders() ([]models.Order, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	GetOrdersByUser(userID int64) ([]models.Order, error)
}

// --- orderService Implementation ---
type orderService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	discountRepo repositories.DiscountRepository
	db           *sql.DB // for managing transactions
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	or repositories.OrderRepository,
	pr repositories.ProductRepository,
	dr repositories.DiscountRepository,
	db *sql.DB,
) OrderService {
	return &orderService{
		orderRepo:    or,
		productRepo:  pr,
		discountRepo: dr,
		db:           db,
	}
}

// CreateOrder persists an unpaid order with its line items. Stock is not
// touched here; it is adjusted when the order is paid.
func (s *orderService) CreateOrder(userID int64, req CreateOrderRequest) (*models.Order, error) {
	if len(req.OrderItems) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrValidation, ErrEmptyOrder)
	}

	discountAmount := decimal.Zero
	if req.DiscountCode != nil && *req.DiscountCode != "" {
		discount, err := s.lookupUsableDiscount(*req.DiscountCode)
		if err != nil {
			return nil, err
		}
		discountAmount = discount.AmountFor(req.ItemsPrice)
	}

	totalPrice := req.ItemsPrice.Add(req.TaxPrice).Sub(discountAmount)
	if totalPrice.IsNegative() {
		totalPrice = decimal.Zero
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	order := &models.Order{
		UserID:         userID,
		PaymentMethod:  req.PaymentMethod,
		ItemsPrice:     req.ItemsPrice,
		TaxPrice:       req.TaxPrice,
		DiscountAmount: discountAmount,
		TotalPrice:     totalPrice,
		IsPaid:         false,
	}
	if _, err := s.orderRepo.CreateOrder(tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, itemReq := range req.OrderItems {
		item := models.OrderItem{
			OrderID:   order.ID,
			ProductID: itemReq.ProductID,
			Name:      itemReq.Name,
			Barcode:   itemReq.Barcode,
			Qty:       itemReq.Qty,
			UnitPrice: itemReq.UnitPrice,
		}
		if _, err := s.orderRepo.CreateOrderItem(tx, &item); err != nil {
			return nil, fmt.Errorf("failed to create order item for product %d: %w", itemReq.ProductID, err)
		}
		order.OrderItems = append(order.OrderItems, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}
	return order, nil
}

func (s *orderService) lookupUsableDiscount(code string) (*models.Discount, error) {
	discount, err := s.discountRepo.GetDiscountByCode(strings.ToUpper(code))
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

// PayOrder marks an order paid and decrements stock for each line item.
// Each decrement is a single conditional statement, so concurrent payments
// against the same product cannot lose updates or drive stock negative.
// Items whose product is gone or short on stock are skipped, best-effort,
// without failing the payment.
func (s *orderService) PayOrder(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order %d: %w", orderID, err)
	}
	if order.IsPaid {
		return nil, ErrOrderAlreadyPaid
	}

	items, err := s.orderRepo.GetOrderItemsByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items for order %d: %w", orderID, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	paidAt := time.Now()
	if err := s.orderRepo.MarkOrderPaid(tx, orderID, paidAt); err != nil {
		// The is_paid guard in the update catches a concurrent payment that
		// slipped in between the read above and this write.
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderAlreadyPaid
		}
		return nil, fmt.Errorf("failed to mark order %d paid: %w", orderID, err)
	}

	for _, item := range items {
		rowsAffected, err := s.productRepo.AdjustStock(tx, item.ProductID, -item.Qty)
		if err != nil {
			return nil, fmt.Errorf("failed to adjust stock for product %d: %w", item.ProductID, err)
		}
		if rowsAffected == 0 {
			utils.LogWarn("Skipping stock decrement", map[string]interface{}{
				"order_id":   orderID,
				"product_id": item.ProductID,
				"qty":        item.Qty,
				"reason":     "product missing or insufficient stock",
			})
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit payment transaction: %w", err)
	}

	order.IsPaid = true
	order.PaidAt = &paidAt
	order.OrderItems = items
	return order, nil
}

func (s *orderService) GetOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order %d: %w", orderID, err)
	}
	items, err := s.orderRepo.GetOrderItemsByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items for order %d: %w", orderID, err)
	}
	order.OrderItems = items
	return order, nil
}

// GetOrdersByUser returns the caller's orders, newest first, with their
// line items attached.
func (s *orderService) GetOrdersByUser(userID int64) ([]models.Order, error) {
	orders, err := s.orderRepo.GetOrdersByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders for user %d: %w", userID, err)
	}
	for i := range orders {
		items, err := s.orderRepo.GetOrderItemsByOrderID(orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch items for order %d: %w", orders[i].ID, err)
		}
		orders[i].OrderItems = items
	}
	return orders, nil
}
