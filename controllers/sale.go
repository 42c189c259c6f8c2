// controllers/sale.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleController struct {
	DB *gorm.DB
}

func NewSaleController(db *gorm.DB) *SaleController {
	return &SaleController{DB: db}
}

// CreateSaleInput defines the expected JSON structure for recording a sale.
// UnitPrice defaults to the item's current price when omitted.
type CreateSaleInput struct {
	ClientID      *uuid.UUID `json:"clientId"`
	Kind          string     `json:"kind" binding:"required,oneof=service product"`
	ItemID        uuid.UUID  `json:"itemId" binding:"required"`
	Quantity      int        `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice     *float64   `json:"unitPrice" binding:"omitempty,min=0"`
	PaymentMethod string     `json:"paymentMethod" binding:"required"`
}

// CreateSale records an immutable sale. The sale row, the product stock
// decrement and the client aggregate bump are applied in one transaction;
// on any failure nothing is committed.
func (sc *SaleController) CreateSale(c *gin.Context) {
	var input CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	// Resolve the item name and default unit price up front
	var itemName string
	var itemPrice float64
	switch input.Kind {
	case models.SaleKindService:
		var service models.Service
		if err := sc.DB.First(&service, "id = ?", input.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		itemName = service.Name
		itemPrice = service.Price
	case models.SaleKindProduct:
		var product models.Product
		if err := sc.DB.First(&product, "id = ?", input.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Product not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		itemName = product.Name
		itemPrice = product.SalePrice
	}

	unitPrice := itemPrice
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}

	if input.ClientID != nil {
		var client models.Client
		if err := sc.DB.First(&client, "id = ?", *input.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	sale := models.Sale{
		ClientID:      input.ClientID,
		Kind:          input.Kind,
		ItemID:        input.ItemID,
		ItemName:      itemName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TotalPrice:    unitPrice * float64(quantity),
		PaymentMethod: input.PaymentMethod,
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		// Decrement stock for product sales. No floor: stock may go
		// negative, mirroring counter sales of uncounted inventory.
		if sale.Kind == models.SaleKindProduct {
			if err := tx.Model(&models.Product{}).Where("id = ?", sale.ItemID).
				Update("stock", gorm.Expr("stock - ?", sale.Quantity)).Error; err != nil {
				return err
			}
		}

		// Bump the client's running aggregates
		if sale.ClientID != nil {
			if err := tx.Model(&models.Client{}).Where("id = ?", *sale.ClientID).
				Updates(map[string]interface{}{
					"total_spent":  gorm.Expr("total_spent + ?", sale.TotalPrice),
					"total_visits": gorm.Expr("total_visits + ?", 1),
					"last_visit":   time.Now(),
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Sale could not be recorded")
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// GetSales lists sales within an inclusive date range (defaults to today)
func (sc *SaleController) GetSales(c *gin.Context) {
	startDate := c.DefaultQuery("start", utils.Today())
	endDate := c.DefaultQuery("end", startDate)

	start, end, err := utils.RangeBounds(startDate, endDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	var sales []models.Sale
	if err := sc.DB.Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").Find(&sales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sales")
		return
	}

	c.JSON(http.StatusOK, sales)
}

// GetSale retrieves a specific sale by ID
func (sc *SaleController) GetSale(c *gin.Context) {
	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var sale models.Sale
	if err := sc.DB.First(&sale, "id = ?", saleUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, sale)
}
