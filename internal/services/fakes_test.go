package services

import (
	"time"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// In-memory fakes for the repository interfaces. Each embeds the interface
// so only the methods a test exercises need stubbing; calling anything else
// panics, which is what we want.

type fakeUserRepo struct {
	repositories.UserRepository
	byID    map[int64]*models.User
	byEmail map[string]*models.User
	nextID  int64
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[int64]*models.User{}, byEmail: map[string]*models.User{}}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ repositories.SQLExecutor, user *models.User) (int64, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return 0, repositories.ErrDuplicateKey
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return user.ID, nil
}

func (r *fakeUserRepo) GetUserByID(userID int64) (*models.User, error) {
	u, ok := r.byID[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeProductRepo struct {
	repositories.ProductRepository
	products map[int64]*models.Product

	adjustCalls  []stockCall
	receiveCalls []receiveCall
}

type stockCall struct {
	productID int64
	delta     int
}

type receiveCall struct {
	productID int64
	qty       int
	costPrice decimal.Decimal
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[int64]*models.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) GetProductByID(productID int64) (*models.Product, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ExistsByNameOrBarcode(name, barcode string) (bool, error) {
	for _, p := range r.products {
		if p.Name == name || p.Barcode == barcode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) CreateProduct(_ repositories.SQLExecutor, product *models.Product) (int64, error) {
	product.ID = int64(len(r.products) + 1)
	cp := *product
	r.products[product.ID] = &cp
	return product.ID, nil
}

func (r *fakeProductRepo) UpdateProduct(_ repositories.SQLExecutor, product *models.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AdjustStock(_ repositories.SQLExecutor, productID int64, delta int) (int64, error) {
	r.adjustCalls = append(r.adjustCalls, stockCall{productID: productID, delta: delta})
	p, ok := r.products[productID]
	if !ok || p.Stock+delta < 0 {
		return 0, nil
	}
	p.Stock += delta
	return 1, nil
}

func (r *fakeProductRepo) ReceiveStock(_ repositories.SQLExecutor, productID int64, qty int, costPrice decimal.Decimal) (int64, error) {
	r.receiveCalls = append(r.receiveCalls, receiveCall{productID: productID, qty: qty, costPrice: costPrice})
	p, ok := r.products[productID]
	if !ok {
		return 0, nil
	}
	p.Stock += qty
	p.CostPrice = costPrice
	return 1, nil
}

type fakeOrderRepo struct {
	repositories.OrderRepository
	orders map[int64]*models.Order
	items  map[int64][]models.OrderItem
	nextID int64

	paidOrders []int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: map[int64]*models.Order{},
		items:  map[int64][]models.OrderItem{},
	}
}

func (r *fakeOrderRepo) CreateOrder(_ repositories.SQLExecutor, order *models.Order) (int64, error) {
	r.nextID++
	order.ID = r.nextID
	cp := *order
	r.orders[order.ID] = &cp
	return order.ID, nil
}

func (r *fakeOrderRepo) CreateOrderItem(_ repositories.SQLExecutor, item *models.OrderItem) (int64, error) {
	item.ID = int64(len(r.items[item.OrderID]) + 1)
	r.items[item.OrderID] = append(r.items[item.OrderID], *item)
	return item.ID, nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID int64) (*models.Order, error) {
	o, ok := r.orders[orderID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *fakeOrderRepo) GetOrdersByUserID(userID int64) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) MarkOrderPaid(_ repositories.SQLExecutor, orderID int64, paidAt time.Time) error {
	o, ok := r.orders[orderID]
	if !ok || o.IsPaid {
		return repositories.ErrNotFound
	}
	o.IsPaid = true
	o.PaidAt = &paidAt
	r.paidOrders = append(r.paidOrders, orderID)
	return nil
}

type fakeDiscountRepo struct {
	repositories.DiscountRepository
	byCode map[string]*models.Discount
}

func newFakeDiscountRepo(discounts ...*models.Discount) *fakeDiscountRepo {
	r := &fakeDiscountRepo{byCode: map[string]*models.Discount{}}
	for _, d := range discounts {
		r.byCode[d.Code] = d
	}
	return r
}

func (r *fakeDiscountRepo) CreateDiscount(_ repositories.SQLExecutor, discount *models.Discount) (int64, error) {
	if _, ok := r.byCode[discount.Code]; ok {
		return 0, repositories.ErrDuplicateKey
	}
	discount.ID = int64(len(r.byCode) + 1)
	cp := *discount
	r.byCode[discount.Code] = &cp
	return discount.ID, nil
}

func (r *fakeDiscountRepo) GetDiscountByCode(code string) (*models.Discount, error) {
	d, ok := r.byCode[code]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

type fakeSupplierRepo struct {
	repositories.SupplierRepository
	suppliers map[int64]*models.Supplier
}

func newFakeSupplierRepo(suppliers ...*models.Supplier) *fakeSupplierRepo {
	r := &fakeSupplierRepo{suppliers: map[int64]*models.Supplier{}}
	for _, s := range suppliers {
		r.suppliers[s.ID] = s
	}
	return r
}

func (r *fakeSupplierRepo) GetSupplierByID(supplierID int64) (*models.Supplier, error) {
	s, ok := r.suppliers[supplierID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

type fakePurchaseRepo struct {
	repositories.PurchaseRepository
	purchases []*models.Purchase
	items     []models.PurchaseItem
}

func (r *fakePurchaseRepo) CreatePurchase(_ repositories.SQLExecutor, purchase *models.Purchase) (int64, error) {
	purchase.ID = int64(len(r.purchases) + 1)
	cp := *purchase
	r.purchases = append(r.purchases, &cp)
	return purchase.ID, nil
}

func (r *fakePurchaseRepo) CreatePurchaseItem(_ repositories.SQLExecutor, item *models.PurchaseItem) (int64, error) {
	item.ID = int64(len(r.items) + 1)
	r.items = append(r.items, *item)
	return item.ID, nil
}

type fakeReportRepo struct {
	repositories.ReportRepository
	totalOrders  int64
	totalRevenue decimal.Decimal
	topSelling   []models.ProductSales
	salesByDate  []models.DailySales
	frequent     []models.FrequentItem
}

func (r *fakeReportRepo) OrderTotals() (int64, decimal.Decimal, error) {
	return r.totalOrders, r.totalRevenue, nil
}

func (r *fakeReportRepo) TopSellingProducts(int) ([]models.ProductSales, error) {
	return r.topSelling, nil
}

func (r *fakeReportRepo) SalesByDate() ([]models.DailySales, error) {
	return r.salesByDate, nil
}

func (r *fakeReportRepo) FrequentItemsByUser(int64, int) ([]models.FrequentItem, error) {
	return r.frequent, nil
}
