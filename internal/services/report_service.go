package services

import (
	"fmt"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/repositories"
)

// topProductLimit caps the top-sellers and frequent-items reports.
const topProductLimit = 5

// --- ReportService Interface ---
type ReportService interface {
	GetDashboardStats() (*models.DashboardStats, error)
	GetSalesByUser(userID int64) ([]models.Order, error)
	GetFrequentItems(userID int64) ([]models.FrequentItem, error)
}

// --- reportService Implementation ---
type reportService struct {
	reportRepo repositories.ReportRepository
	orderRepo  repositories.OrderRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(reportRepo repositories.ReportRepository, orderRepo repositories.OrderRepository) ReportService {
	return &reportService{reportRepo: reportRepo, orderRepo: orderRepo}
}

// GetDashboardStats assembles the admin dashboard aggregate: order count,
// total revenue (0 when there are no orders), top sellers, and revenue by
// calendar date.
func (s *reportService) GetDashboardStats() (*models.DashboardStats, error) {
	totalOrders, totalRevenue, err := s.reportRepo.OrderTotals()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order totals: %w", err)
	}

	topSelling, err := s.reportRepo.TopSellingProducts(topProductLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top selling products: %w", err)
	}

	salesByDate, err := s.reportRepo.SalesByDate()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales by date: %w", err)
	}

	return &models.DashboardStats{
		TotalOrders:        totalOrders,
		TotalRevenue:       totalRevenue,
		TopSellingProducts: topSelling,
		SalesByDate:        salesByDate,
	}, nil
}

// GetSalesByUser returns the requesting staff member's recorded sales,
// newest first, with line items attached.
func (s *reportService) GetSalesByUser(userID int64) ([]models.Order, error) {
	orders, err := s.orderRepo.GetOrdersByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales for user %d: %w", userID, err)
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

// GetFrequentItems returns the caller's most frequently bought products,
// grouped by product identifier, most bought first.
func (s *reportService) GetFrequentItems(userID int64) ([]models.FrequentItem, error) {
	items, err := s.reportRepo.FrequentItemsByUser(userID, topProductLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch frequent items for user %d: %w", userID, err)
	}
	return items, nil
}
