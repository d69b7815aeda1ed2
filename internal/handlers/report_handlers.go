package handlers

import (
	"net/http"

	"retail_pos_backend/internal/middleware"
	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/services"
	"retail_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetDashboardStats returns the admin dashboard aggregate.
func (h *ReportHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.reportService.GetDashboardStats()
	if err != nil {
		utils.LogError(err, "GetDashboardStats: error from reportService.GetDashboardStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to fetch dashboard statistics.", ""))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetMySales returns the requesting staff member's sales history.
func (h *ReportHandler) GetMySales(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized,
			"User not authenticated.", ""))
		return
	}

	sales, err := h.reportService.GetSalesByUser(userID)
	if err != nil {
		utils.LogError(err, "GetMySales: error from reportService.GetSalesByUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to fetch sales history.", ""))
		return
	}
	if sales == nil {
		sales = []models.Order{}
	}
	c.JSON(http.StatusOK, sales)
}

// GetMyFrequentItems returns the caller's most frequently bought products.
func (h *ReportHandler) GetMyFrequentItems(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized,
			"User not authenticated.", ""))
		return
	}

	items, err := h.reportService.GetFrequentItems(userID)
	if err != nil {
		utils.LogError(err, "GetMyFrequentItems: error from reportService.GetFrequentItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to fetch frequent items.", ""))
		return
	}
	if items == nil {
		items = []models.FrequentItem{}
	}
	c.JSON(http.StatusOK, items)
}
