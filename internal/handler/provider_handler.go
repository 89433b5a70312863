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

type ProviderHandler struct {
	providerRepo repository.ProviderRepository
}

func NewProviderHandler(providerRepo repository.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{providerRepo: providerRepo}
}

func (h *ProviderHandler) findOwned(c *fiber.Ctx) (*model.Provider, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return h.providerRepo.FindByID(authUserID(c), id)
}

// List returns the caller's providers in the minimal shape, ordered by
// label then city
// GET /providers/
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	providers, err := h.providerRepo.FindAllByOwner(authUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	items := make([]model.ProviderListItem, 0, len(providers))
	for i := range providers {
		items = append(items, providers[i].ToListItem())
	}
	return c.JSON(items)
}

// Create adds a provider owned by the caller
// POST /providers/
func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	var req model.ProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); errs != nil {
		return c.Status(400).JSON(errs)
	}

	provider := model.Provider{
		OwnerID: authUserID(c),
		Label:   req.Label,
		Address: req.Address,
		City:    req.City,
		Zipcode: req.Zipcode,
		Phone:   req.Phone,
	}
	if err := h.providerRepo.Create(&provider); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(201).JSON(provider.ToResponse())
}

// Get retrieves one provider in the full shape
// GET /providers/:id
func (h *ProviderHandler) Get(c *fiber.Ctx) error {
	provider, err := h.findOwned(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(404)
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(provider.ToResponse())
}

// Update replaces a provider's fields, keeping the owner in place
// PUT /providers/:id
func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	provider, err := h.findOwned(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(404)
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	var req model.ProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); errs != nil {
		return c.Status(400).JSON(errs)
	}

	provider.OwnerID = authUserID(c)
	provider.Label = req.Label
	provider.Address = req.Address
	provider.City = req.City
	provider.Zipcode = req.Zipcode
	provider.Phone = req.Phone
	if err := h.providerRepo.Update(provider); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(provider.ToResponse())
}

// Delete removes a provider
// DELETE /providers/:id
func (h *ProviderHandler) Delete(c *fiber.Ctx) error {
	provider, err := h.findOwned(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(404)
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if err := h.providerRepo.Delete(provider); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.SendStatus(204)
}
