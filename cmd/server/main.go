package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hospital-finder-backend/internal/config"
	"hospital-finder-backend/internal/database"
	"hospital-finder-backend/internal/handler"
	"hospital-finder-backend/internal/middleware"
	"hospital-finder-backend/internal/repository"
	"hospital-finder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connection
	db := database.Connect(cfg)
	defer database.Close(db)

	// 3. Initialize repositories
	hospitalRepo := repository.NewHospitalRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 4. Initialize services
	hospitalService := service.NewHospitalService(hospitalRepo)
	bookingService := service.NewBookingService(bookingRepo, hospitalRepo, auditRepo)
	importService := service.NewImportService(hospitalRepo, auditRepo)

	// 5. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 6. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 7. Register handlers
	healthHandler := handler.NewHealthHandler(hospitalService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService, importService, cfg.Server.NearbyRadiusKm)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// 8. Define routes
	r.GET("/health", healthHandler.Health)

	hospitals := r.Group("/hospitals")
	{
		hospitals.GET("", hospitalHandler.GetAllHospitals)
		hospitals.GET("/nearby", hospitalHandler.GetNearbyHospitals)
		hospitals.GET("/search", hospitalHandler.SearchHospitals)
		hospitals.GET("/stats", hospitalHandler.GetStats)
		hospitals.GET("/:id", hospitalHandler.GetHospital)
		hospitals.POST("/upload", hospitalHandler.UploadHospitals)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.POST("/:id/confirm", bookingHandler.ConfirmBooking)
		bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
		bookings.GET("/:id/download-confirmation", bookingHandler.DownloadConfirmation)
	}

	// Unmatched routes return 404 with the list of valid routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path),
			"availableRoutes": []string{
				"GET /health",
				"GET /hospitals",
				"GET /hospitals/nearby?lat=XX&lng=XX&radius=XX",
				"GET /hospitals/search?state=XX&district=XX",
				"GET /hospitals/:id",
				"GET /hospitals/stats",
				"POST /hospitals/upload",
				"POST /bookings",
				"GET /bookings/:id",
				"POST /bookings/:id/confirm",
				"POST /bookings/:id/cancel",
				"GET /bookings/:id/download-confirmation",
			},
		})
	})

	// 9. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
