package controllers

import (
	"net/http"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

// CreateExpenseInput defines the expected JSON structure for recording an expense
type CreateExpenseInput struct {
	Description   string  `json:"description" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Amount        float64 `json:"amount" binding:"min=0"`
	Date          string  `json:"date" binding:"required"` // YYYY-MM-DD
	PaymentMethod string  `json:"paymentMethod"`
	Notes         string  `json:"notes"`
}

// CreateExpense records an expense. Expenses are immutable; there is no
// update or delete route.
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	expense := models.Expense{
		Description:   input.Description,
		Category:      input.Category,
		Amount:        input.Amount,
		Date:          input.Date,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}

	if err := ec.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses lists expenses within an inclusive date range (defaults to today)
func (ec *ExpenseController) GetExpenses(c *gin.Context) {
	startDate := c.DefaultQuery("start", utils.Today())
	endDate := c.DefaultQuery("end", startDate)

	if !utils.ValidateDate(startDate) || !utils.ValidateDate(endDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	var expenses []models.Expense
	if err := ec.DB.Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date DESC").Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	c.JSON(http.StatusOK, expenses)
}
