package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-order-intake/src/config"
	"go-order-intake/src/controllers"
	"go-order-intake/src/infrastructure/log"
	"go-order-intake/src/infrastructure/oms"
	"go-order-intake/src/services/catalog"
	"go-order-intake/src/services/order/domain"
	"go-order-intake/src/services/order/domain/persistence"

	_ "go-order-intake/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

const serviceName = "order-intake"

// @title        Order Intake Service
// @version      1.0
// @description  Product catalog and order intake API
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.NewLogger()

	configs, err := config.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "Failed to load configuration", err)
	}
	logger.Info(ctx, "Configuration loaded successfully")

	// Load the catalog once. A broken catalog degrades to an empty one, the
	// service still has to come up.
	productRepository, err := catalog.NewProductRepository(configs.CatalogFile)
	if err != nil {
		logger.Exception(ctx, "Failed to load product catalog, starting with an empty catalog", err)
	}
	catalogService := catalog.NewCatalogService(logger, productRepository)
	logger.InfoWithExtra(ctx, "Product catalog loaded", map[string]any{
		"ProductCount": len(productRepository.GetAllProducts()),
	})

	orderRepository := persistence.NewMemoryOrderRepository()

	statusClient, err := oms.NewClient(configs.OrderManagementBaseURL, configs.OrderManagementTimeout)
	if err != nil {
		logger.Fatal(ctx, "Failed to create order-management client", err)
	}

	orderService := domain.NewOrderService(logger, catalogService, orderRepository, statusClient)

	orderController := controllers.NewOrderController(orderService)
	catalogController := controllers.NewCatalogController(catalogService)

	app := fiber.New(fiber.Config{
		ServerHeader: "Order-Intake-Service",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.Exception(c.Context(), "HTTP request error", err)
			if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
				return c.Status(e.Code).JSON(fiber.Map{"success": false, "error": e.Message})
			}
			// Never leak internals to the client.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal server error"})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(_ string) bool { return true },
	}))
	app.Use(recover.New())

	// Correlation ID + request/response logging.
	app.Use(func(c *fiber.Ctx) error {
		correlationID := c.Get("X-Correlation-Id")
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		reqCtx := logger.WithCorrelationID(c.UserContext(), correlationID)
		c.SetUserContext(reqCtx)
		c.Set("X-Correlation-Id", correlationID)

		start := time.Now()
		err := c.Next()

		logger.RequestResponse(reqCtx, &log.Field{
			URL:            c.OriginalURL(),
			HTTPMethod:     c.Method(),
			HTTPStatusCode: c.Response().StatusCode(),
			Duration:       time.Since(start).Milliseconds(),
			Message:        "HTTP request handled",
		})
		return err
	})

	app.Get("/api/swagger/*", fiberSwagger.WrapHandler)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"status":    "ok",
				"service":   serviceName,
				"timestamp": time.Now().UTC(),
			},
		})
	})

	catalogController.Route(app)
	orderController.Route(app)

	// Everything else is a 404 with the standard envelope.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Route not found"})
	})

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	serverShutdown := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Starting server on port "+configs.Port)
		if err := app.Listen(":" + configs.Port); err != nil {
			serverShutdown <- err
		}
	}()

	select {
	case <-c:
		logger.Info(ctx, "Shutdown signal received, shutting down gracefully...")
	case err := <-serverShutdown:
		logger.Exception(ctx, "Server error occurred", err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Exception(ctx, "Server shutdown error", err)
	}

	logger.Info(ctx, "Server shutdown complete")
}
