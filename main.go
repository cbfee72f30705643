package main

import (
	"log"
	"os"

	"order-api/internal/handler"
	"order-api/internal/infrastructure"
	"order-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// serverAddr is the fixed listen address; the service is fronted by whatever
// needs to expose it externally.
const serverAddr = "127.0.0.1:3000"

// route binds one method+path pair to its handler. Routing is kept as a
// static table rather than scattered registration calls.
type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

func main() {
	// Load environment variables from a .env file when present
	_ = godotenv.Load()

	// The connection URL is the only required configuration
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	// Initialize the shared database connection pool
	db, err := infrastructure.ConnectDatabase(databaseURL)
	if err != nil {
		log.Fatalf("Failed to create database connection pool: %v", err)
	}

	// Optional sample data for local development
	if os.Getenv("SEED_DATA") == "true" {
		seedManager := infrastructure.NewSeedDataManager(db)
		if err := seedManager.SeedAll(); err != nil {
			log.Fatalf("Failed to setup seed data: %v", err)
		}
	}

	// Initialize services
	productService := service.NewProductService(db)
	customerService := service.NewCustomerService(db)
	orderService := service.NewOrderService(db)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productService)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(orderService)

	routes := []route{
		{"GET", "/products", productHandler.GetProducts},
		{"GET", "/customers", customerHandler.GetCustomers},
		{"GET", "/orders", orderHandler.GetOrders},
		{"POST", "/orders", orderHandler.CreateOrder},
	}

	// Setup Gin router
	r := gin.Default()
	for _, rt := range routes {
		r.Handle(rt.method, rt.path, rt.handler)
	}

	log.Printf("Server is running on http://%s", serverAddr)
	if err := r.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
