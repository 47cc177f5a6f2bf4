package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go-resto-backoffice/internal/handler"
	"go-resto-backoffice/internal/jobs"
	"go-resto-backoffice/internal/mailer"
	"go-resto-backoffice/internal/middleware"
	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/repository"
	"go-resto-backoffice/internal/service"
	"go-resto-backoffice/internal/ws"
	"go-resto-backoffice/pkg/database"
	"go-resto-backoffice/pkg/storage"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
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
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(&model.User{}, &model.Category{}, &model.Menu{}, &model.DiningTable{}, &model.ActivityLog{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Notification queue: client di request path, worker di proses yang sama
	redisAddr := getEnv("REDIS_ADDR", "127.0.0.1:6379")
	dispatcher := jobs.NewDispatcher(redisAddr)
	defer dispatcher.Close()

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	mailService := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       smtpPort,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   getEnv("SMTP_FROM_NAME", "Resto Backoffice"),
		RequireTLS: true,
	})

	// Penerima notifikasi bisa dikonfigurasi; default mengikuti alamat lama
	recipient := getEnv("NOTIFY_EMAIL", "wksahabatptk@gmail.com")
	processor := jobs.NewProcessor(mailService, recipient, getEnv("SMTP_FROM_NAME", "Resto Backoffice"))

	queueSrv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 5},
	)
	if err := queueSrv.Start(processor.NewServeMux()); err != nil {
		log.Fatal("Failed to start notification worker: ", err)
	}

	// 6. Storage foto menu
	photoStorage := storage.NewPhotoStorage(getEnv("STORAGE_DIR", "public"))

	// 7. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	menuRepo := repository.NewMenuRepo(db)
	tableRepo := repository.NewTableRepo(db)
	activityRepo := repository.NewActivityLogRepo(db)
	userRepo := repository.NewUserRepo(db)

	categoryService := service.NewCategoryService(categoryRepo, activityRepo, dispatcher, wsHub)
	menuService := service.NewMenuService(menuRepo, categoryRepo, activityRepo, dispatcher, wsHub, photoStorage)
	tableService := service.NewTableService(tableRepo, activityRepo, wsHub)
	authService := service.NewAuthService(userRepo)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	menuHandler := handler.NewMenuHandler(menuService)
	tableHandler := handler.NewTableHandler(tableService)
	authHandler := handler.NewAuthHandler(authService)

	// 8. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Resto Backoffice v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Foto menu dilayani dari folder publik
	app.Static("/storage", getEnv("STORAGE_DIR", "public"))

	// 9. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	// Semua rute di bawah butuh login; mutasi butuh role ADMIN
	protected := api.Group("", middleware.RequireAuth(userRepo))
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// Kategori
	protected.Get("/kategori", categoryHandler.GetCategories)
	protected.Get("/kategori/:id", categoryHandler.GetCategory)
	protected.Post("/kategori", adminOnly, categoryHandler.CreateCategory)
	protected.Put("/kategori/:id", adminOnly, categoryHandler.UpdateCategory)
	protected.Delete("/kategori", adminOnly, categoryHandler.BulkDeleteCategories)

	// Menu
	protected.Get("/menu", menuHandler.GetMenus)
	protected.Get("/menu/:id", menuHandler.GetMenu)
	protected.Get("/menu/:id/show", menuHandler.ShowMenu)
	protected.Post("/menu", adminOnly, menuHandler.CreateMenu)
	protected.Put("/menu/:id", adminOnly, menuHandler.UpdateMenu)
	protected.Delete("/menu/:id", adminOnly, menuHandler.DestroyMenu)

	// Meja
	protected.Get("/meja", tableHandler.GetTables)
	protected.Get("/meja/:id", tableHandler.GetTable)
	protected.Put("/meja/:id", adminOnly, tableHandler.UpdateTable)
	protected.Delete("/meja", adminOnly, tableHandler.BulkDeleteTables)

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

	// 10. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	queueSrv.Shutdown()
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("✅ Admin user created: admin@example.com / admin123 (ADMIN)")
	}
}
