package models

import "github.com/shopspring/decimal"

// DashboardStats is the admin dashboard aggregate, computed on demand.
type DashboardStats struct {
	TotalOrders        int64           `json:"total_orders"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TopSellingProducts []ProductSales  `json:"top_selling_products"`
	SalesByDate        []DailySales    `json:"sales_by_date"`
}

// ProductSales is a top-seller row, grouped by the item name snapshot.
type ProductSales struct {
	Name      string `json:"name"`
	TotalSold int64  `json:"total_sold"`
}

// DailySales is revenue for one calendar date (YYYY-MM-DD).
type DailySales struct {
	Date       string          `json:"date"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// FrequentItem is a most-frequently-bought row for one customer, grouped
// by product identifier.
type FrequentItem struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	TotalBought int64  `json:"total_bought"`
}
