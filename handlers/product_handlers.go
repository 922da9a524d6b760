package handlers

import (
	"app/catalog"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetProducts returns the product catalog. When a page query
// parameter is present the list is paginated; otherwise the full catalog is
// returned, matching how the dashboard consumes it.
// GET /api/v1/products
func HandleGetProducts(c *fiber.Ctx) error {
	products := catalog.All()

	if c.Query("page") == "" {
		return c.JSON(fiber.Map{"status": "success", "data": products})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)
	pagination := utils.CreatePagination(len(products), page, pageSize)
	start, end := utils.SliceBounds(len(products), pagination.CurrentPage, pagination.PageSize)

	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       products[start:end],
		"pagination": pagination,
	})
}
