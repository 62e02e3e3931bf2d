package controllers

import (
	"go-order-intake/src/services/catalog"

	"github.com/gofiber/fiber/v2"
)

type CatalogController struct {
	catalogService catalog.CatalogService
}

func NewCatalogController(catalogService catalog.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (c *CatalogController) Route(app *fiber.App) {
	api := app.Group("/api/products")
	api.Get("/", c.GetAllProducts)
	api.Get("/:id", c.GetProduct)
}

// GetAllProducts godoc
// @Summary      List products
// @Description  Returns the full product catalog and its count
// @Tags         products
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/products [get]
func (c *CatalogController) GetAllProducts(ctx *fiber.Ctx) error {
	products := c.catalogService.GetAllProducts(ctx.UserContext())
	return ctx.JSON(fiber.Map{"success": true, "count": len(products), "data": products})
}

// GetProduct godoc
// @Summary      Get product by ID
// @Description  Returns a single catalog product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/products/{id} [get]
func (c *CatalogController) GetProduct(ctx *fiber.Ctx) error {
	productID := ctx.Params("id")
	product, found := c.catalogService.GetProduct(ctx.UserContext(), productID)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Product not found"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": product})
}
