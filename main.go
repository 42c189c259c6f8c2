package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"barberpro-backend/config"
	"barberpro-backend/models"
	"barberpro-backend/routes"
	"barberpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbPath := config.DBPath()
	db, err := config.ConnectDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Product{},
		&models.Appointment{},
		&models.Sale{},
		&models.Expense{},
		&models.CashSession{},
		&models.ReminderLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	backups := services.NewBackupService(db, dbPath)
	backups.StartScheduler()

	reminders := services.NewReminderService(db)
	if reminders.Enabled() {
		reminders.StartScheduler()
	} else {
		log.Println("Twilio credentials not set, birthday reminders disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db, backups)
	printRoutes(r)
	r.Run(":" + port)
}

// seedAdmin inserts the bootstrap administrative account on first run.
func seedAdmin(db *gorm.DB) error {
	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("Default admin account created with the built-in password; change it after first login")
	}

	admin = models.User{
		Name:     "Administrator",
		Username: "admin",
		Password: password, // hashed in BeforeCreate hook
		Role:     "admin",
		IsActive: true,
	}
	return db.Create(&admin).Error
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
