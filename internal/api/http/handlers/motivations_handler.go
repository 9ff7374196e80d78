package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mindconnect/mind-service/internal/api/dto"
	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/service"
)

// MotivationsHandler exposes motivational content endpoints.
type MotivationsHandler struct {
	motivations *service.MotivationService
}

// NewMotivationsHandler constructs handler.
func NewMotivationsHandler(motivationService *service.MotivationService) *MotivationsHandler {
	return &MotivationsHandler{motivations: motivationService}
}

// List handles GET /api/motivations. Supports ?category= and ?type=.
func (h *MotivationsHandler) List(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		motivations, err := h.motivations.ListByCategory(c.Context(), category)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewMotivationResponses(motivations)})
	}
	if contentType := c.Query("type"); contentType != "" {
		motivations, err := h.motivations.ListByType(c.Context(), domain.MotivationType(contentType))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewMotivationResponses(motivations)})
	}

	motivations, err := h.motivations.ListActive(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMotivationResponses(motivations)})
}

// Daily handles GET /api/motivations/daily.
func (h *MotivationsHandler) Daily(c *fiber.Ctx) error {
	motivation, err := h.motivations.Daily(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMotivationResponse(motivation)})
}

// Get handles GET /api/motivations/:id.
func (h *MotivationsHandler) Get(c *fiber.Ctx) error {
	motivation, err := h.motivations.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMotivationResponse(motivation)})
}

// Create handles POST /api/motivations.
func (h *MotivationsHandler) Create(c *fiber.Ctx) error {
	var req dto.MotivationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	motivation, err := h.motivations.Create(c.Context(), service.MotivationInput{
		Title:    req.Title,
		Content:  req.Content,
		Type:     req.Type,
		Author:   req.Author,
		Category: req.Category,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewMotivationResponse(motivation)})
}

// Update handles PUT /api/motivations/:id.
func (h *MotivationsHandler) Update(c *fiber.Ctx) error {
	var req dto.MotivationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	motivation, err := h.motivations.Update(c.Context(), c.Params("id"), service.MotivationInput{
		Title:    req.Title,
		Content:  req.Content,
		Type:     req.Type,
		Author:   req.Author,
		Category: req.Category,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMotivationResponse(motivation)})
}

// Delete handles DELETE /api/motivations/:id.
func (h *MotivationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.motivations.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
