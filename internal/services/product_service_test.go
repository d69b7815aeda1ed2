package services

import (
	"errors"
	"testing"

	"retail_pos_backend/internal/models"

	"github.com/shopspring/decimal"
)

func TestCreateProductRejectsDuplicateNameOrBarcode(t *testing.T) {
	repo := newFakeProductRepo(&models.Product{ID: 1, Name: "Rice", Barcode: "111"})
	svc := NewProductService(repo, nil)

	_, err := svc.CreateProduct(1, CreateProductRequest{Name: "Rice", Category: "grain", Barcode: "222"})
	if !errors.Is(err, ErrProductExists) {
		t.Errorf("duplicate name: err = %v, want ErrProductExists", err)
	}

	_, err = svc.CreateProduct(1, CreateProductRequest{Name: "Other", Category: "grain", Barcode: "111"})
	if !errors.Is(err, ErrProductExists) {
		t.Errorf("duplicate barcode: err = %v, want ErrProductExists", err)
	}
}

func TestCreateProductStoresOwningUser(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	product, err := svc.CreateProduct(42, CreateProductRequest{
		Name:     "Soap",
		Category: "toiletries",
		Barcode:  "333",
		MRP:      decimal.NewFromInt(25),
		Stock:    10,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.UserID != 42 {
		t.Errorf("UserID = %d, want 42", product.UserID)
	}
	if repo.products[product.ID] == nil {
		t.Error("product was not persisted")
	}
}

func TestUpdateProductOnlyOverwritesPresentFields(t *testing.T) {
	repo := newFakeProductRepo(&models.Product{
		ID:       1,
		Name:     "Rice",
		Category: "grain",
		Barcode:  "111",
		MRP:      decimal.NewFromInt(80),
		Stock:    12,
		TaxRate:  decimal.NewFromInt(5),
	})
	svc := NewProductService(repo, nil)

	newMRP := decimal.NewFromInt(90)
	zeroStock := 0
	product, err := svc.UpdateProduct(1, UpdateProductRequest{
		MRP:   &newMRP,
		Stock: &zeroStock, // explicit zero counts as an overwrite
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if !product.MRP.Equal(newMRP) {
		t.Errorf("MRP = %s, want 90", product.MRP)
	}
	if product.Stock != 0 {
		t.Errorf("Stock = %d, want 0", product.Stock)
	}
	if product.Name != "Rice" || product.Category != "grain" || product.Barcode != "111" {
		t.Error("absent fields must keep their stored values")
	}
	if !product.TaxRate.Equal(decimal.NewFromInt(5)) {
		t.Errorf("TaxRate = %s, want 5", product.TaxRate)
	}
}

func TestUpdateProductRejectsNegativeStock(t *testing.T) {
	repo := newFakeProductRepo(&models.Product{ID: 1, Name: "Rice", Stock: 5})
	svc := NewProductService(repo, nil)

	negative := -1
	if _, err := svc.UpdateProduct(1, UpdateProductRequest{Stock: &negative}); !errors.Is(err, ErrValidation) {
		t.Fatalf("negative stock: err = %v, want ErrValidation", err)
	}
}

func TestUpdateProductUnknownID(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), nil)

	name := "Ghost"
	if _, err := svc.UpdateProduct(99, UpdateProductRequest{Name: &name}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product: err = %v, want ErrProductNotFound", err)
	}
}
