// controllers/cashier.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CashierController struct {
	DB *gorm.DB
}

func NewCashierController(db *gorm.DB) *CashierController {
	return &CashierController{DB: db}
}

type OpenSessionInput struct {
	OpeningAmount float64 `json:"openingAmount" binding:"min=0"`
}

type CloseSessionInput struct {
	DeclaredAmount float64 `json:"declaredAmount" binding:"min=0"`
}

// GetCurrentSession returns the open session, or 404 when the register is closed
func (cc *CashierController) GetCurrentSession(c *gin.Context) {
	var session models.CashSession
	if err := cc.DB.Where("status = ?", models.CashSessionOpen).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No open cash session")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// OpenSession opens today's cash session. Only one session may be open at a
// time system-wide.
func (cc *CashierController) OpenSession(c *gin.Context) {
	var input OpenSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.CashSession
	err := cc.DB.Where("status = ?", models.CashSessionOpen).First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "A cash session is already open")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	session := models.CashSession{
		Date:          utils.Today(),
		OpeningAmount: input.OpeningAmount,
		Status:        models.CashSessionOpen,
		OpenedAt:      time.Now(),
	}

	if err := cc.DB.Create(&session).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to open cash session")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// CloseSession closes the open session. Expected cash is the opening amount
// plus the day's sale totals; the discrepancy (declared - expected) is
// reported but never blocks the close.
func (cc *CashierController) CloseSession(c *gin.Context) {
	var input CloseSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var session models.CashSession
	if err := cc.DB.Where("status = ?", models.CashSessionOpen).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusConflict, "No cash session is open")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	start, end, err := utils.DayBounds(session.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Corrupt session date")
		return
	}

	var salesTotal float64
	if err := cc.DB.Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&salesTotal).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to total sales")
		return
	}

	expected := session.OpeningAmount + salesTotal
	discrepancy := input.DeclaredAmount - expected
	now := time.Now()

	session.ClosingAmount = &input.DeclaredAmount
	session.ExpectedAmount = &expected
	session.Discrepancy = &discrepancy
	session.Status = models.CashSessionClosed
	session.ClosedAt = &now

	if err := cc.DB.Save(&session).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to close cash session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":        session,
		"salesTotal":     salesTotal,
		"expectedAmount": expected,
		"declaredAmount": input.DeclaredAmount,
		"discrepancy":    discrepancy,
	})
}

// GetSessions lists past sessions, newest first
func (cc *CashierController) GetSessions(c *gin.Context) {
	var sessions []models.CashSession
	if err := cc.DB.Order("opened_at DESC").Find(&sessions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sessions")
		return
	}

	c.JSON(http.StatusOK, sessions)
}
