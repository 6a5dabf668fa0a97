package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"

	"artprints/internal/handlers"
	"artprints/internal/repositories"
	"artprints/internal/services"
	"artprints/internal/store"
	"artprints/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8000")
	viper.SetDefault("DATABASE_NAME", "artprints")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	databaseName := viper.GetString("DATABASE_NAME")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	ctx := context.Background()

	// --- Document Store ---
	// The store is optional: without DATABASE_URL (or with an unreachable
	// one) the app serves from in-memory repositories so the demo still
	// works end to end, and /test reports the degraded state.
	st, err := store.Connect(ctx, databaseURL, databaseName)
	if err != nil {
		log.Printf("Warning: document store unavailable: %v", err)
		st = nil
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Repositories ---
	var printRepo repositories.PrintRepository
	var orderRepo repositories.OrderRepository
	if st.Connected() {
		printRepo = repositories.NewMongoPrintRepository(st)
		orderRepo = repositories.NewMongoOrderRepository(st)
	} else {
		printRepo = repositories.NewMockPrintRepository()
		orderRepo = repositories.NewMockOrderRepository()
	}

	// --- Services ---
	catalogService := services.NewCatalogService(printRepo)
	orderService := services.NewOrderService(orderRepo, printRepo, mqClient)

	// --- Handlers ---
	healthHandler := handlers.NewHealthHandler(st, databaseURL != "")
	printHandler := handlers.NewPrintHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	healthHandler.RegisterRoutes(app)
	api := app.Group("/api")
	printHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)

	// One-shot best-effort seed of an empty catalog.
	seedCtx, cancelSeed := context.WithTimeout(ctx, 15*time.Second)
	services.SeedCatalog(seedCtx, printRepo)
	cancelSeed()

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", appPort)
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if err := st.Close(context.Background()); err != nil {
		log.Printf("Error closing document store: %v", err)
	}
	log.Println("Server gracefully stopped")
}
