package services

import (
	"errors"
	"testing"

	"retail_pos_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func TestCreatePurchaseRejectsEmptyItems(t *testing.T) {
	svc := NewPurchaseService(&fakePurchaseRepo{}, newFakeProductRepo(), newFakeSupplierRepo(), nil)

	_, err := svc.CreatePurchase(1, CreatePurchaseRequest{SupplierID: 1})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("CreatePurchase with no items: err = %v, want ErrValidation", err)
	}
}

func TestCreatePurchaseUnknownSupplier(t *testing.T) {
	svc := NewPurchaseService(&fakePurchaseRepo{}, newFakeProductRepo(), newFakeSupplierRepo(), nil)

	req := CreatePurchaseRequest{
		SupplierID:    77,
		PurchaseItems: []CreatePurchaseItemRequest{{ProductID: 1, Name: "Rice", Qty: 5}},
	}
	if _, err := svc.CreatePurchase(1, req); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("unknown supplier: err = %v, want ErrSupplierNotFound", err)
	}
}

func TestCreatePurchaseIncrementsStockAndUpdatesCost(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	productRepo := newFakeProductRepo(
		&models.Product{ID: 1, Name: "Rice", Stock: 4, CostPrice: decimal.NewFromInt(40)},
	)
	purchaseRepo := &fakePurchaseRepo{}
	supplierRepo := newFakeSupplierRepo(&models.Supplier{ID: 2, Name: "Agro Traders"})
	svc := NewPurchaseService(purchaseRepo, productRepo, supplierRepo, db)

	// The same product appears twice; the later line's cost must win.
	req := CreatePurchaseRequest{
		SupplierID: 2,
		TotalCost:  decimal.NewFromInt(470),
		PurchaseItems: []CreatePurchaseItemRequest{
			{ProductID: 1, Name: "Rice", Qty: 5, CostPrice: decimal.NewFromInt(42)},
			{ProductID: 1, Name: "Rice", Qty: 5, CostPrice: decimal.NewFromInt(52)},
		},
	}

	purchase, err := svc.CreatePurchase(9, req)
	if err != nil {
		t.Fatalf("CreatePurchase: %v", err)
	}
	if purchase.UserID != 9 || purchase.SupplierID != 2 {
		t.Errorf("purchase header = user %d supplier %d, want user 9 supplier 2", purchase.UserID, purchase.SupplierID)
	}
	if len(purchase.PurchaseItems) != 2 || len(purchaseRepo.items) != 2 {
		t.Errorf("persisted %d items, want 2", len(purchaseRepo.items))
	}
	if got := productRepo.products[1].Stock; got != 14 {
		t.Errorf("stock = %d, want 14", got)
	}
	if got := productRepo.products[1].CostPrice; !got.Equal(decimal.NewFromInt(52)) {
		t.Errorf("cost price = %s, want 52 (last line wins)", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestCreatePurchaseSkipsMissingProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	productRepo := newFakeProductRepo()
	supplierRepo := newFakeSupplierRepo(&models.Supplier{ID: 1, Name: "Agro Traders"})
	svc := NewPurchaseService(&fakePurchaseRepo{}, productRepo, supplierRepo, db)

	req := CreatePurchaseRequest{
		SupplierID:    1,
		PurchaseItems: []CreatePurchaseItemRequest{{ProductID: 404, Name: "Gone", Qty: 3, CostPrice: decimal.NewFromInt(10)}},
	}
	if _, err := svc.CreatePurchase(1, req); err != nil {
		t.Fatalf("CreatePurchase with missing product: %v", err)
	}
	if len(productRepo.receiveCalls) != 1 {
		t.Errorf("receive calls = %d, want 1", len(productRepo.receiveCalls))
	}
}
