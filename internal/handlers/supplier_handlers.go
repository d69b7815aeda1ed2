package handlers

import (
	"errors"
	"net/http"

	"retail_pos_backend/internal/models"
	"retail_pos_backend/internal/services"
	"retail_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SupplierHandler holds the supplier service.
type SupplierHandler struct {
	supplierService services.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(ss services.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: ss}
}

// GetSuppliers lists all suppliers.
func (h *SupplierHandler) GetSuppliers(c *gin.Context) {
	suppliers, err := h.supplierService.GetSuppliers()
	if err != nil {
		utils.LogError(err, "GetSuppliers: error from supplierService.GetSuppliers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to fetch suppliers.", ""))
		return
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	c.JSON(http.StatusOK, suppliers)
}

// CreateSupplier adds a supplier.
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req services.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid request payload", err.Error()))
		return
	}

	supplier, err := h.supplierService.CreateSupplier(req)
	if err != nil {
		if errors.Is(err, services.ErrSupplierExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict,
				"Supplier with the same name already exists.", ""))
			return
		}
		utils.LogError(err, "CreateSupplier: error from supplierService.CreateSupplier")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to create supplier.", ""))
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// UpdateSupplier applies a partial update to a supplier.
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	supplierID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "invalid supplier id")
		return
	}

	var req services.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid request payload", err.Error()))
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(supplierID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSupplierNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound,
				"Supplier not found.", ""))
		case errors.Is(err, services.ErrSupplierExists):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict,
				"Supplier with the same name already exists.", ""))
		default:
			utils.LogError(err, "UpdateSupplier: error from supplierService.UpdateSupplier")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
				"Failed to update supplier.", ""))
		}
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier removes a supplier. Historical purchases keep their
// supplier references; there is no cascade.
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	supplierID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "invalid supplier id")
		return
	}

	if err := h.supplierService.DeleteSupplier(supplierID); err != nil {
		if errors.Is(err, services.ErrSupplierNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound,
				"Supplier not found.", ""))
			return
		}
		utils.LogError(err, "DeleteSupplier: error from supplierService.DeleteSupplier")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to delete supplier.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier removed"})
}
