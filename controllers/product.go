package controllers

import (
	"errors"
	"net/http"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name      string  `json:"name" binding:"required"`
	SalePrice float64 `json:"salePrice" binding:"min=0"`
	CostPrice float64 `json:"costPrice" binding:"min=0"`
	Stock     int     `json:"stock"`
	MinStock  *int    `json:"minStock" binding:"omitempty,min=0"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name      *string  `json:"name"`
	SalePrice *float64 `json:"salePrice" binding:"omitempty,min=0"`
	CostPrice *float64 `json:"costPrice" binding:"omitempty,min=0"`
	MinStock  *int     `json:"minStock" binding:"omitempty,min=0"`
	IsActive  *bool    `json:"isActive"`
}

// AdjustStockInput carries a manual stock adjustment. Delta may be negative.
type AdjustStockInput struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

// CreateProduct adds a retail product
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		Name:      input.Name,
		SalePrice: input.SalePrice,
		CostPrice: input.CostPrice,
		Stock:     input.Stock,
		MinStock:  5,
		IsActive:  true,
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts lists products; pass ?all=true to include inactive ones
func (pc *ProductController) GetProducts(c *gin.Context) {
	query := pc.DB.Order("name")
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a specific product by ID
func (pc *ProductController) GetProduct(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, "id = ?", productUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetLowStockProducts lists active products at or below their minimum stock
func (pc *ProductController) GetLowStockProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Where("is_active = ? AND stock <= min_stock", true).
		Order("stock").Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// UpdateProduct applies a partial update to an existing product. Stock is not
// editable here; it only moves through sales and explicit adjustments.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, "id = ?", productUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.SalePrice != nil {
		product.SalePrice = *input.SalePrice
	}
	if input.CostPrice != nil {
		product.CostPrice = *input.CostPrice
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// AdjustStock applies a manual stock movement (restock or correction)
func (pc *ProductController) AdjustStock(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input AdjustStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result := pc.DB.Model(&models.Product{}).Where("id = ?", productUUID).
		Update("stock", gorm.Expr("stock + ?", input.Delta))

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to adjust stock")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, "id = ?", productUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct deactivates a product, keeping its sale history intact
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	result := pc.DB.Model(&models.Product{}).Where("id = ?", productUUID).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deactivated successfully"})
}
