// controllers/export.go
package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExportController streams CSV extracts of the raw ledgers. Re-summing an
// exported file reproduces the report aggregator's totals for the same range.
type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

func csvHeader(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
}

// ExportSales streams the sales of a date range as CSV
func (ec *ExportController) ExportSales(c *gin.Context) {
	startDate := c.DefaultQuery("start", utils.Today())
	endDate := c.DefaultQuery("end", startDate)

	start, end, err := utils.RangeBounds(startDate, endDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	var sales []models.Sale
	if err := ec.DB.Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at").Find(&sales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sales")
		return
	}

	csvHeader(c, "sales_"+startDate+"_"+endDate+".csv")
	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{"id", "date", "kind", "item", "quantity", "unit_price", "total_price", "payment_method", "client_id"})
	for _, s := range sales {
		clientID := ""
		if s.ClientID != nil {
			clientID = s.ClientID.String()
		}
		w.Write([]string{
			s.ID.String(),
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.Kind,
			s.ItemName,
			fmt.Sprintf("%d", s.Quantity),
			fmt.Sprintf("%.2f", s.UnitPrice),
			fmt.Sprintf("%.2f", s.TotalPrice),
			s.PaymentMethod,
			clientID,
		})
	}
}

// ExportExpenses streams the expenses of a date range as CSV
func (ec *ExportController) ExportExpenses(c *gin.Context) {
	startDate := c.DefaultQuery("start", utils.Today())
	endDate := c.DefaultQuery("end", startDate)

	if !utils.ValidateDate(startDate) || !utils.ValidateDate(endDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	var expenses []models.Expense
	if err := ec.DB.Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date").Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	csvHeader(c, "expenses_"+startDate+"_"+endDate+".csv")
	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{"id", "date", "description", "category", "amount", "payment_method"})
	for _, e := range expenses {
		w.Write([]string{
			e.ID.String(),
			e.Date,
			e.Description,
			e.Category,
			fmt.Sprintf("%.2f", e.Amount),
			e.PaymentMethod,
		})
	}
}

// ExportSummary streams the period's financial summary as CSV
func (ec *ExportController) ExportSummary(c *gin.Context) {
	startDate := c.DefaultQuery("start", utils.Today())
	endDate := c.DefaultQuery("end", startDate)

	start, end, err := utils.RangeBounds(startDate, endDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	var totalSales float64
	if err := ec.DB.Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total_price), 0)").Scan(&totalSales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to total sales")
		return
	}

	var totalExpenses float64
	if err := ec.DB.Model(&models.Expense{}).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalExpenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to total expenses")
		return
	}

	csvHeader(c, "summary_"+startDate+"_"+endDate+".csv")
	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{"start_date", "end_date", "total_sales", "total_expenses", "profit"})
	w.Write([]string{
		startDate,
		endDate,
		fmt.Sprintf("%.2f", totalSales),
		fmt.Sprintf("%.2f", totalExpenses),
		fmt.Sprintf("%.2f", totalSales-totalExpenses),
	})
}
