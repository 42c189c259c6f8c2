package controllers

import (
	"net/http"

	"barberpro-backend/services"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type BackupController struct {
	Backups *services.BackupService
}

func NewBackupController(backups *services.BackupService) *BackupController {
	return &BackupController{Backups: backups}
}

// CreateBackup copies the database file to the backups directory on demand
func (bc *BackupController) CreateBackup(c *gin.Context) {
	path, err := bc.Backups.Run()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Backup failed: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Backup created successfully",
		"file":    path,
	})
}
