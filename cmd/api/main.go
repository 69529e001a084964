package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-storepos/internal/handler"
	"go-storepos/internal/middleware"
	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/internal/service"
	"go-storepos/internal/ws"
	"go-storepos/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Service{},
		&model.InventoryEntry{},
		&model.Order{},
		&model.OrderItem{},
		&model.Clocking{},
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	serviceRepo := repository.NewServiceRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	clockingRepo := repository.NewClockingRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo, inventoryRepo, wsHub)
	orderService := service.NewOrderService(orderRepo, serviceRepo, wsHub)
	clockingService := service.NewClockingService(clockingRepo, wsHub)
	dashService := service.NewDashboardService(orderRepo, userRepo)
	exportService := service.NewExportService(orderRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	productHandler := handler.NewProductHandler(productService)
	serviceHandler := handler.NewServiceHandler(serviceRepo)
	orderHandler := handler.NewOrderHandler(orderService)
	clockingHandler := handler.NewClockingHandler(clockingService)
	dashHandler := handler.NewDashboardHandler(dashService)
	exportHandler := handler.NewExportHandler(exportService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Two-Store POS v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Admin routes
	admin := protected.Group("/admin", middleware.RequireRole(model.RoleAdmin))

	admin.Get("/dashboard/overview", dashHandler.GetOverview)
	admin.Get("/dashboard/cards", dashHandler.GetCards)

	admin.Get("/categories", categoryHandler.GetCategories)
	admin.Post("/categories", categoryHandler.CreateCategory)
	admin.Put("/categories/:id", categoryHandler.UpdateCategory)
	admin.Delete("/categories/:id", categoryHandler.DeleteCategory)

	admin.Get("/products", productHandler.GetProducts)
	admin.Get("/products/:id", productHandler.GetProduct)
	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)
	admin.Post("/products/:id/quantity", productHandler.AddQuantity)

	admin.Get("/services", serviceHandler.GetServices)
	admin.Get("/services/:id", serviceHandler.GetService)
	admin.Post("/services", serviceHandler.CreateService)
	admin.Put("/services/:id", serviceHandler.UpdateService)
	admin.Delete("/services/:id", serviceHandler.DeleteService)

	admin.Get("/employees", userHandler.GetEmployees)
	admin.Get("/employees/:id", userHandler.GetEmployee)
	admin.Post("/employees", userHandler.CreateEmployee)
	admin.Put("/employees/:id", userHandler.UpdateEmployee)
	admin.Put("/employees/:id/password", userHandler.ChangePassword)
	admin.Delete("/employees/:id", userHandler.DeleteEmployee)

	admin.Get("/orders", orderHandler.GetAllOrders)
	admin.Get("/orders/:id", orderHandler.GetOrder)
	admin.Get("/orders/:id/invoice.pdf", exportHandler.InvoicePDF)

	admin.Get("/exports/orders.csv", exportHandler.OrdersCSV)
	admin.Get("/exports/sales.xlsx", exportHandler.MonthlyReportXLSX)

	// Store employee routes (both stores plus admins)
	store := protected.Group("/store", middleware.RequireRole(model.RoleStoreOne, model.RoleStoreTwo, model.RoleAdmin))

	store.Get("/dashboard/overview", dashHandler.GetMyOverview)

	store.Get("/categories", categoryHandler.GetCategories)
	store.Get("/products", productHandler.GetPublishedProducts)
	store.Get("/services", serviceHandler.GetPublishedServices)

	store.Get("/orders", orderHandler.GetMyOrders)
	store.Get("/orders/uncomplete", orderHandler.GetUncompleteOrders)
	store.Get("/orders/:id", orderHandler.GetOrder)
	store.Post("/orders/product", orderHandler.CreateProductOrder)
	store.Post("/orders/service", orderHandler.CreateServiceOrder)
	store.Put("/orders/:id", orderHandler.UpdateOrder)

	store.Get("/clocking", clockingHandler.GetStatus)
	store.Get("/clocking/history", clockingHandler.GetHistory)
	store.Post("/clocking/start", clockingHandler.Start)
	store.Post("/clocking/stop", clockingHandler.Stop)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Name:     "Administrator",
		Username: "admin",
		Email:    email,
		Role:     model.RoleAdmin,
		Status:   model.StatusEmployed,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", email)
	}
}
