package controllers

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"go-order-intake/src/infrastructure/log"
	"go-order-intake/src/infrastructure/oms"
	"go-order-intake/src/services/catalog"
	"go-order-intake/src/services/order/domain"
	"go-order-intake/src/services/order/domain/persistence"
)

// responseEnvelope mirrors the JSON body every endpoint produces.
type responseEnvelope struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Error   string `json:"error"`
	Data    any    `json:"data"`
}

type orderEnvelope struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Data    domain.Order `json:"data"`
}

type orderListEnvelope struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []domain.Order `json:"data"`
}

// newTestApp wires the full stack against the given order-management base
// URL, the way main does.
func newTestApp(orderManagementURL string) (*fiber.App, error) {
	logger := log.NewLogger()

	productRepository, err := catalog.NewProductRepository("")
	if err != nil {
		return nil, err
	}
	catalogService := catalog.NewCatalogService(logger, productRepository)

	statusClient, err := oms.NewClient(orderManagementURL, 200*time.Millisecond)
	if err != nil {
		return nil, err
	}

	orderService := domain.NewOrderService(logger, catalogService, persistence.NewMemoryOrderRepository(), statusClient)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
				return c.Status(e.Code).JSON(fiber.Map{"success": false, "error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal server error"})
		},
	})
	app.Use(recover.New())

	NewCatalogController(catalogService).Route(app)
	NewOrderController(orderService).Route(app)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Route not found"})
	})

	return app, nil
}

// unreachableURL returns a base URL nothing is listening on.
func unreachableURL() string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()
	return url
}
