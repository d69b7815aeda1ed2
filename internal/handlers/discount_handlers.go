package handlers

import (
	"errors"
	"net/http"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/services"
	"retail_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DiscountHandler holds the discount service.
type DiscountHandler struct {
	discountService services.DiscountService
}

// NewDiscountHandler creates a new DiscountHandler.
func NewDiscountHandler(ds services.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: ds}
}

// GetDiscounts lists all discount codes.
func (h *DiscountHandler) GetDiscounts(c *gin.Context) {
	discounts, err := h.discountService.GetDiscounts()
	if err != nil {
		utils.LogError(err, "GetDiscounts: error from discountService.GetDiscounts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to fetch discounts.", ""))
		return
	}
	if discounts == nil {
		discounts = []models.Discount{}
	}
	c.JSON(http.StatusOK, discounts)
}

// CreateDiscount adds a discount code.
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req services.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid request payload", err.Error()))
		return
	}

	discount, err := h.discountService.CreateDiscount(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDiscountExists):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict,
				"Discount code already exists.", ""))
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
				"Invalid discount.", err.Error()))
		default:
			utils.LogError(err, "CreateDiscount: error from discountService.CreateDiscount")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
				"Failed to create discount.", ""))
		}
		return
	}
	c.JSON(http.StatusCreated, discount)
}

// DeleteDiscount removes a discount code.
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	discountID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "invalid discount id")
		return
	}

	if err := h.discountService.DeleteDiscount(discountID); err != nil {
		if errors.Is(err, services.ErrDiscountNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound,
				"Discount not found.", ""))
			return
		}
		utils.LogError(err, "DeleteDiscount: error from discountService.DeleteDiscount")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to delete discount.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discount removed"})
}

// ValidateDiscount looks up a code and returns the record only when it is
// active and unexpired at the moment of lookup.
func (h *DiscountHandler) ValidateDiscount(c *gin.Context) {
	code := c.Param("code")
	if utils.IsEmpty(code) {
		utils.RespondValidationFailed(c, "discount code required")
		return
	}

	discount, err := h.discountService.ValidateDiscount(code)
	if err != nil {
		if errors.Is(err, services.ErrDiscountInvalid) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound,
				"Invalid or expired discount code.", ""))
			return
		}
		utils.LogError(err, "ValidateDiscount: error from discountService.ValidateDiscount")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to validate discount.", ""))
		return
	}
	c.JSON(http.StatusOK, discount)
}
