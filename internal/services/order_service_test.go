package services

import (
	"errors"
	"testing"
	"time"

	"retail_pos_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(), newFakeDiscountRepo(), nil)

	_, err := svc.CreateOrder(1, CreateOrderRequest{PaymentMethod: "cash"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("CreateOrder with empty cart: err = %v, want ErrValidation", err)
	}
}

func TestCreateOrderPersistsUnpaidOrderWithItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, newFakeProductRepo(), newFakeDiscountRepo(), db)

	req := CreateOrderRequest{
		PaymentMethod: "cash",
		ItemsPrice:    decimal.NewFromInt(100),
		TaxPrice:      decimal.NewFromInt(10),
		OrderItems: []CreateOrderItemRequest{
			{ProductID: 7, Name: "Soap", Qty: 2, UnitPrice: decimal.NewFromInt(50)},
		},
	}

	order, err := svc.CreateOrder(3, req)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.IsPaid {
		t.Error("new order should be unpaid")
	}
	if !order.TotalPrice.Equal(decimal.NewFromInt(110)) {
		t.Errorf("TotalPrice = %s, want 110", order.TotalPrice)
	}
	if len(orderRepo.items[order.ID]) != 1 {
		t.Errorf("persisted %d items, want 1", len(orderRepo.items[order.ID]))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestCreateOrderRecomputesDiscountServerSide(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	discountRepo := newFakeDiscountRepo(&models.Discount{
		ID:        1,
		Code:      "SAVE10",
		Type:      models.DiscountTypePercentage,
		Value:     decimal.NewFromInt(10),
		ExpiresAt: time.Now().Add(time.Hour),
		IsActive:  true,
	})
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(), discountRepo, db)

	code := "save10" // lower case on the wire; lookup is case-normalized
	req := CreateOrderRequest{
		PaymentMethod: "card",
		ItemsPrice:    decimal.NewFromInt(200),
		TaxPrice:      decimal.NewFromInt(20),
		DiscountCode:  &code,
		OrderItems: []CreateOrderItemRequest{
			{ProductID: 1, Name: "Rice", Qty: 4, UnitPrice: decimal.NewFromInt(50)},
		},
	}

	order, err := svc.CreateOrder(3, req)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if !order.DiscountAmount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("DiscountAmount = %s, want 20 (10%% of 200)", order.DiscountAmount)
	}
	if !order.TotalPrice.Equal(decimal.NewFromInt(200)) {
		t.Errorf("TotalPrice = %s, want 200", order.TotalPrice)
	}
}

func TestCreateOrderRejectsExpiredDiscount(t *testing.T) {
	discountRepo := newFakeDiscountRepo(&models.Discount{
		Code:      "OLD",
		Type:      models.DiscountTypeFixed,
		Value:     decimal.NewFromInt(5),
		ExpiresAt: time.Now().Add(-time.Hour),
		IsActive:  true,
	})
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(), discountRepo, nil)

	code := "OLD"
	req := CreateOrderRequest{
		PaymentMethod: "cash",
		ItemsPrice:    decimal.NewFromInt(50),
		DiscountCode:  &code,
		OrderItems:    []CreateOrderItemRequest{{ProductID: 1, Name: "Tea", Qty: 1, UnitPrice: decimal.NewFromInt(50)}},
	}

	if _, err := svc.CreateOrder(1, req); !errors.Is(err, ErrDiscountInvalid) {
		t.Fatalf("CreateOrder with expired code: err = %v, want ErrDiscountInvalid", err)
	}
}

func TestPayOrderDecrementsStockPerItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	productRepo := newFakeProductRepo(
		&models.Product{ID: 1, Name: "Rice", Stock: 10},
		&models.Product{ID: 2, Name: "Soap", Stock: 5},
	)
	orderRepo := newFakeOrderRepo()
	orderRepo.orders[9] = &models.Order{ID: 9, UserID: 3}
	orderRepo.items[9] = []models.OrderItem{
		{OrderID: 9, ProductID: 1, Name: "Rice", Qty: 4},
		{OrderID: 9, ProductID: 2, Name: "Soap", Qty: 2},
	}

	svc := NewOrderService(orderRepo, productRepo, newFakeDiscountRepo(), db)

	order, err := svc.PayOrder(9)
	if err != nil {
		t.Fatalf("PayOrder: %v", err)
	}
	if !order.IsPaid || order.PaidAt == nil {
		t.Error("order should be paid with a paid timestamp")
	}
	if got := productRepo.products[1].Stock; got != 6 {
		t.Errorf("product 1 stock = %d, want 6", got)
	}
	if got := productRepo.products[2].Stock; got != 3 {
		t.Errorf("product 2 stock = %d, want 3", got)
	}
}

func TestPayOrderSkipsMissingProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	// Product 99 was deleted after checkout; its decrement is skipped and
	// the payment still succeeds.
	productRepo := newFakeProductRepo(&models.Product{ID: 1, Name: "Rice", Stock: 10})
	orderRepo := newFakeOrderRepo()
	orderRepo.orders[5] = &models.Order{ID: 5, UserID: 2}
	orderRepo.items[5] = []models.OrderItem{
		{OrderID: 5, ProductID: 99, Name: "Gone", Qty: 1},
		{OrderID: 5, ProductID: 1, Name: "Rice", Qty: 3},
	}

	svc := NewOrderService(orderRepo, productRepo, newFakeDiscountRepo(), db)

	if _, err := svc.PayOrder(5); err != nil {
		t.Fatalf("PayOrder: %v", err)
	}
	if got := productRepo.products[1].Stock; got != 7 {
		t.Errorf("product 1 stock = %d, want 7", got)
	}
	if len(productRepo.adjustCalls) != 2 {
		t.Errorf("adjust calls = %d, want 2", len(productRepo.adjustCalls))
	}
}

func TestPayOrderRejectsAlreadyPaid(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	paidAt := time.Now()
	orderRepo.orders[4] = &models.Order{ID: 4, IsPaid: true, PaidAt: &paidAt}

	svc := NewOrderService(orderRepo, newFakeProductRepo(), newFakeDiscountRepo(), nil)

	if _, err := svc.PayOrder(4); !errors.Is(err, ErrOrderAlreadyPaid) {
		t.Fatalf("PayOrder on paid order: err = %v, want ErrOrderAlreadyPaid", err)
	}
}

func TestGetOrdersByUserAttachesItems(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.orders[1] = &models.Order{ID: 1, UserID: 5}
	orderRepo.items[1] = []models.OrderItem{{OrderID: 1, ProductID: 2, Name: "Soap", Qty: 2}}
	orderRepo.orders[2] = &models.Order{ID: 2, UserID: 8}

	svc := NewOrderService(orderRepo, newFakeProductRepo(), newFakeDiscountRepo(), nil)

	orders, err := svc.GetOrdersByUser(5)
	if err != nil {
		t.Fatalf("GetOrdersByUser: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(orders))
	}
	if len(orders[0].OrderItems) != 1 || orders[0].OrderItems[0].Qty != 2 {
		t.Errorf("OrderItems = %+v", orders[0].OrderItems)
	}
}

func TestGetOrderByIDUnknown(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(), newFakeDiscountRepo(), nil)

	if _, err := svc.GetOrderByID(42); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestPayOrderUnknownOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(), newFakeDiscountRepo(), nil)

	if _, err := svc.PayOrder(123); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("PayOrder on unknown order: err = %v, want ErrOrderNotFound", err)
	}
}
