package handler

import (
	"go-stock-api/internal/model"
	"go-stock-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// pathID parses a uuid path param; a malformed id behaves like a miss.
func pathID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}

// ListProducts returns the caller's products with only in-stock batches
// GET /products/
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(authUserID(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(products)
}

// CreateProduct adds a product owned by the caller
// POST /products/
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product, err := h.service.CreateProduct(authUserID(c), &req)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(201).JSON(product)
}

// GetProduct retrieves one product with all of its batches
// GET /products/:id
func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(404)
	}
	product, err := h.service.GetProduct(authUserID(c), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(product)
}

// UpdateProduct replaces a product's fields, keeping the owner in place
// PUT /products/:id
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(404)
	}
	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product, err := h.service.UpdateProduct(authUserID(c), id, &req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(product)
}

// DeleteProduct removes a product and all of its batches
// DELETE /products/:id
func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(404)
	}
	if err := h.service.DeleteProduct(authUserID(c), id); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(204)
}

// ListBatches returns every batch of the product, in or out of stock
// GET /products/:id/batches/
func (h *InventoryHandler) ListBatches(c *fiber.Ctx) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(404)
	}
	batches, err := h.service.ListBatches(authUserID(c), productID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(batches)
}

// CreateBatch adds a batch under the product
// POST /products/:id/batches/
func (h *InventoryHandler) CreateBatch(c *fiber.Ctx) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(404)
	}
	var req model.BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	batch, err := h.service.CreateBatch(authUserID(c), productID, &req)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(201).JSON(batch)
}

// GetBatch retrieves one batch
// GET /products/:id/batches/:batchID
func (h *InventoryHandler) GetBatch(c *fiber.Ctx) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(404)
	}
	batchID, ok := pathID(c, "batchID")
	if !ok {
		return c.SendStatus(404)
	}
	batch, err := h.service.GetBatch(authUserID(c), productID, batchID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(batch)
}

// UpdateBatch replaces a batch's fields, keeping owner and product in place
// PUT /products/:id/batches/:batchID
func (h *InventoryHandler) UpdateBatch(c *fiber.Ctx) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(404)
	}
	batchID, ok := pathID(c, "batchID")
	if !ok {
		return c.SendStatus(404)
	}
	var req model.BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	batch, err := h.service.UpdateBatch(authUserID(c), productID, batchID, &req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(batch)
}

// DeleteBatch removes a batch
// DELETE /products/:id/batches/:batchID
func (h *InventoryHandler) DeleteBatch(c *fiber.Ctx) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(404)
	}
	batchID, ok := pathID(c, "batchID")
	if !ok {
		return c.SendStatus(404)
	}
	if err := h.service.DeleteBatch(authUserID(c), productID, batchID); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(204)
}
