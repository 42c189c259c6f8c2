package controllers

import (
	"net/http"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboardOverview returns the day's key metrics: scheduled
// appointments, revenue so far, clients registered today and low-stock
// products.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	today := utils.Today()
	start, end, err := utils.DayBounds(today)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve today")
		return
	}

	// Appointments still scheduled for today
	var appointmentsToday int64
	dc.DB.Model(&models.Appointment{}).
		Where("date = ? AND status = ?", today, models.AppointmentScheduled).
		Count(&appointmentsToday)

	// Revenue so far today
	var revenueToday float64
	dc.DB.Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total_price), 0)").Scan(&revenueToday)

	// Clients registered today
	var newClients int64
	dc.DB.Model(&models.Client{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&newClients)

	// Products at or below minimum stock
	var lowStockProducts []models.Product
	dc.DB.Where("is_active = ? AND stock <= min_stock", true).
		Order("stock").Limit(10).Find(&lowStockProducts)

	// Today's agenda, ordered by time
	var agenda []models.Appointment
	dc.DB.Where("date = ?", today).Order("time").Find(&agenda)

	c.JSON(http.StatusOK, gin.H{
		"date":              today,
		"appointmentsToday": appointmentsToday,
		"revenueToday":      revenueToday,
		"newClients":        newClients,
		"lowStockCount":     len(lowStockProducts),
		"lowStockProducts":  lowStockProducts,
		"agenda":            agenda,
	})
}
