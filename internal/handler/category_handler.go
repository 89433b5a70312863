package handler

import (
	"errors"

	"go-stock-api/internal/model"
	"go-stock-api/internal/repository"
	"go-stock-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryHandler(categoryRepo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// findOwned resolves the :id path param against the caller's own categories.
func (h *CategoryHandler) findOwned(c *fiber.Ctx) (*model.Category, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return h.categoryRepo.FindByID(authUserID(c), id)
}

// List returns the caller's categories ordered by label
// GET /categories/
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryRepo.FindAllByOwner(authUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	responses := make([]model.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, categories[i].ToResponse())
	}
	return c.JSON(responses)
}

// Create adds a category owned by the caller
// POST /categories/
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req model.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); errs != nil {
		return c.Status(400).JSON(errs)
	}

	category := model.Category{OwnerID: authUserID(c), Label: req.Label}
	if err := h.categoryRepo.Create(&category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(201).JSON(category.ToResponse())
}

// Get retrieves one category
// GET /categories/:id
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	category, err := h.findOwned(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(404)
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(category.ToResponse())
}

// Update replaces a category's label, keeping the owner in place
// PUT /categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	category, err := h.findOwned(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(404)
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	var req model.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); errs != nil {
		return c.Status(400).JSON(errs)
	}

	category.OwnerID = authUserID(c)
	category.Label = req.Label
	if err := h.categoryRepo.Update(category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(category.ToResponse())
}

// Delete removes a category
// DELETE /categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	category, err := h.findOwned(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(404)
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if err := h.categoryRepo.Delete(category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.SendStatus(204)
}
