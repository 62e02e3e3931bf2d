package controllers

import (
	"errors"

	"go-order-intake/src/controllers/models"
	"go-order-intake/src/services/order/domain"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	orderService domain.OrderService
}

func NewOrderController(orderService domain.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

func (c *OrderController) Route(app *fiber.App) {
	api := app.Group("/api/orders")
	api.Post("/create", c.CreateOrder)
	api.Get("/", c.ListOrders)
	api.Get("/:id", c.GetOrder)
}

// CreateOrder godoc
// @Summary      Create a new order
// @Description  Validates the submitted items against the catalog, prices them server-side and stores the order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body  models.CreateOrderRequest  true  "Order payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/orders/create [post]
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var request models.CreateOrderRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}

	input := domain.CreateOrderInput{
		Items: make([]domain.ItemInput, 0, len(request.Items)),
		Customer: domain.Customer{
			Name:    request.Customer.Name,
			Email:   request.Customer.Email,
			Address: request.Customer.Address,
			Phone:   request.Customer.Phone,
		},
	}
	for _, item := range request.Items {
		input.Items = append(input.Items, domain.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := c.orderService.CreateOrder(ctx.UserContext(), input)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": validationErr.Message})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal server error"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// GetOrder godoc
// @Summary      Get order by ID
// @Description  Returns a stored order, refreshing its status from the order-management service when reachable
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/orders/{id} [get]
func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	orderID := ctx.Params("id")
	order, err := c.orderService.GetOrder(ctx.UserContext(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal server error"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": order})
}

// ListOrders godoc
// @Summary      List orders
// @Description  Returns every stored order in insertion order and the total count
// @Tags         orders
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/orders [get]
func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	orders := c.orderService.ListOrders(ctx.UserContext())
	return ctx.JSON(fiber.Map{"success": true, "count": len(orders), "data": orders})
}
