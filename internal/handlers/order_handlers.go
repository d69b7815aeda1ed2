package handlers

import (
	"errors"
	"net/http"

	"retail_pos_backend/internal/middleware"
	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/services"
	"retail_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// CreateOrder handles checkout: it persists an unpaid order with its line
// items. Stock is adjusted later, when the order is paid.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid request payload", err.Error()))
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized,
			"User not authenticated.", ""))
		return
	}

	order, err := h.orderService.CreateOrder(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
				"No order items.", err.Error()))
		case errors.Is(err, services.ErrDiscountInvalid):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest,
				"Invalid or expired discount code.", ""))
		default:
			utils.LogError(err, "CreateOrder: error from orderService.CreateOrder")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
				"Failed to create order.", ""))
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// PayOrder marks an order as paid and decrements stock for its line items.
func (h *OrderHandler) PayOrder(c *gin.Context) {
	orderID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "invalid order id")
		return
	}

	order, err := h.orderService.PayOrder(orderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound,
				"Order not found.", ""))
		case errors.Is(err, services.ErrOrderAlreadyPaid):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict,
				"Order is already paid.", ""))
		default:
			utils.LogError(err, "PayOrder: error from orderService.PayOrder")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
				"Failed to pay order.", ""))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrders lists all orders for admins.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders()
	if err != nil {
		utils.LogError(err, "GetOrders: error from orderService.GetOrders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to fetch orders.", ""))
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// GetMyOrders lists the caller's own orders, with line items.
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized,
			"User not authenticated.", ""))
		return
	}

	orders, err := h.orderService.GetOrdersByUser(userID)
	if err != nil {
		utils.LogError(err, "GetMyOrders: error from orderService.GetOrdersByUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to fetch orders.", ""))
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
