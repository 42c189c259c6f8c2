// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportController handles all reporting functions. Every figure is
// re-derived from the raw sale/expense rows at query time.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// FinancialSummary represents the report payload for a date range
type FinancialSummary struct {
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	TotalSales    float64         `json:"totalSales"`
	TotalExpenses float64         `json:"totalExpenses"`
	Profit        float64         `json:"profit"`
	SaleCount     int             `json:"saleCount"`
	TopClients    []ClientSummary `json:"topClients"`
	TopItems      []ItemSummary   `json:"topItems"`
}

type ClientSummary struct {
	Name   string  `json:"name"`
	Visits int     `json:"visits"`
	Spent  float64 `json:"spent"`
}

type ItemSummary struct {
	Name    string  `json:"name"`
	Kind    string  `json:"kind"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// GetFinancialSummary returns totals, profit and top-N lists for a range
func (rc *ReportController) GetFinancialSummary(c *gin.Context) {
	startDate := c.DefaultQuery("start", utils.Today())
	endDate := c.DefaultQuery("end", startDate)

	start, end, err := utils.RangeBounds(startDate, endDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	totalSales, saleCount, err := rc.getSalesTotal(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to total sales")
		return
	}

	totalExpenses, err := rc.getExpensesTotal(startDate, endDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to total expenses")
		return
	}

	topClients, err := rc.getTopClients(start, end, 5)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top clients")
		return
	}

	topItems, err := rc.getTopItems(start, end, 5)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top items")
		return
	}

	c.JSON(http.StatusOK, FinancialSummary{
		StartDate:     startDate,
		EndDate:       endDate,
		TotalSales:    totalSales,
		TotalExpenses: totalExpenses,
		Profit:        totalSales - totalExpenses,
		SaleCount:     saleCount,
		TopClients:    topClients,
		TopItems:      topItems,
	})
}

// Helper functions for reports

func (rc *ReportController) getSalesTotal(start, end time.Time) (float64, int, error) {
	var total float64
	if err := rc.DB.Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error; err != nil {
		return 0, 0, err
	}

	var count int64
	if err := rc.DB.Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	return total, int(count), nil
}

func (rc *ReportController) getExpensesTotal(startDate, endDate string) (float64, error) {
	var total float64
	err := rc.DB.Model(&models.Expense{}).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (rc *ReportController) getTopClients(start, end time.Time, limit int) ([]ClientSummary, error) {
	var clients []ClientSummary

	err := rc.DB.Table("sales").
		Select("clients.name, COUNT(sales.id) as visits, SUM(sales.total_price) as spent").
		Joins("JOIN clients ON clients.id = sales.client_id").
		Where("sales.client_id IS NOT NULL AND sales.created_at >= ? AND sales.created_at < ? AND clients.deleted_at IS NULL", start, end).
		Group("clients.name").
		Order("spent DESC").
		Limit(limit).
		Scan(&clients).Error

	return clients, err
}

func (rc *ReportController) getTopItems(start, end time.Time, limit int) ([]ItemSummary, error) {
	var items []ItemSummary

	err := rc.DB.Table("sales").
		Select("item_name as name, kind, SUM(quantity) as count, SUM(total_price) as revenue").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("item_name, kind").
		Order("revenue DESC").
		Limit(limit).
		Scan(&items).Error

	return items, err
}
