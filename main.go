package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gorent/backend-rental/booking"
	"github.com/gorent/backend-rental/config"
	"github.com/gorent/backend-rental/routes"
	"github.com/gorent/backend-rental/services"
	"github.com/gorent/backend-rental/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	// Wire the persistence ports. The in-memory driver keeps everything in
	// process with a seeded catalog; the default is the hosted Supabase tables.
	var (
		carStore     booking.CarStore
		bookingStore booking.BookingStore
		userStore    store.UserStore
	)
	if cfg.StoreDriver == "memory" {
		log.Println("Using in-memory store with seeded catalog")
		mem := store.NewMemoryStore()
		carStore, bookingStore, userStore = mem, mem, mem
	} else {
		supabaseClient := config.NewSupabaseClient(cfg)
		sb := store.NewSupabaseStore(supabaseClient)
		carStore, bookingStore, userStore = sb, sb, sb
	}

	engine := booking.NewEngine(carStore, bookingStore)
	chatProvider := services.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, services.NewToolExecutor(carStore))

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(config.CORSMiddleware(cfg))

	// Setup routes
	routes.SetupRoutes(router, engine, carStore, bookingStore, userStore, chatProvider, cfg)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
