package routes

import (
	"barberpro-backend/config"
	"barberpro-backend/controllers"
	"barberpro-backend/services"
	"barberpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, backups *services.BackupService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	clientController := controllers.NewClientController(db)
	serviceController := controllers.NewServiceController(db)
	productController := controllers.NewProductController(db)
	appointmentController := controllers.NewAppointmentController(db)
	saleController := controllers.NewSaleController(db)
	expenseController := controllers.NewExpenseController(db)
	cashierController := controllers.NewCashierController(db)
	reportController := controllers.NewReportController(db)
	dashboardController := controllers.NewDashboardController(db)
	exportController := controllers.NewExportController(db)
	backupController := controllers.NewBackupController(backups)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
		auth.PUT("/profile", authController.UpdateProfile)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", clientController.CreateClient)
			clients.GET("", clientController.GetClients)
			clients.GET("/:id", clientController.GetClient)
			clients.PUT("/:id", clientController.UpdateClient)
			clients.DELETE("/:id", clientController.DeleteClient)
		}

		// Service routes
		catalog := api.Group("/services")
		{
			catalog.POST("", serviceController.CreateService)
			catalog.GET("", serviceController.GetServices)
			catalog.GET("/:id", serviceController.GetService)
			catalog.PUT("/:id", serviceController.UpdateService)
			catalog.DELETE("/:id", serviceController.DeleteService)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.POST("", productController.CreateProduct)
			products.GET("", productController.GetProducts)
			products.GET("/low-stock", productController.GetLowStockProducts)
			products.GET("/:id", productController.GetProduct)
			products.PUT("/:id", productController.UpdateProduct)
			products.PUT("/:id/stock", productController.AdjustStock)
			products.DELETE("/:id", productController.DeleteProduct)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.PUT("/:id/status", appointmentController.UpdateAppointmentStatus)
			appointments.DELETE("/:id", appointmentController.DeleteAppointment)
		}

		// Sale routes (append-only: no update or delete)
		sales := api.Group("/sales")
		{
			sales.POST("", saleController.CreateSale)
			sales.GET("", saleController.GetSales)
			sales.GET("/:id", saleController.GetSale)
		}

		// Expense routes (append-only)
		expenses := api.Group("/expenses")
		{
			expenses.POST("", expenseController.CreateExpense)
			expenses.GET("", expenseController.GetExpenses)
		}

		// Cash register routes
		cashier := api.Group("/cashier")
		{
			cashier.GET("/current", cashierController.GetCurrentSession)
			cashier.GET("/sessions", cashierController.GetSessions)
			cashier.POST("/open", cashierController.OpenSession)
			cashier.POST("/close", cashierController.CloseSession)
		}

		// Report routes
		api.GET("/reports/summary", reportController.GetFinancialSummary)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// Export routes
		export := api.Group("/export")
		{
			export.GET("/sales", exportController.ExportSales)
			export.GET("/expenses", exportController.ExportExpenses)
			export.GET("/summary", exportController.ExportSummary)
		}

		// Admin-only routes
		admin := api.Group("")
		admin.Use(utils.AdminOnly())
		{
			users := admin.Group("/users")
			{
				users.POST("", userController.CreateUser)
				users.GET("", userController.GetUsers)
				users.PUT("/:id", userController.UpdateUser)
			}

			admin.POST("/backup", backupController.CreateBackup)
		}
	}

	return r
}
