package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mindconnect/mind-service/internal/api/dto"
	"github.com/mindconnect/mind-service/internal/service"
)

// TherapistsHandler exposes therapist directory and profile endpoints.
type TherapistsHandler struct {
	therapists *service.TherapistService
}

// NewTherapistsHandler constructs handler.
func NewTherapistsHandler(therapistService *service.TherapistService) *TherapistsHandler {
	return &TherapistsHandler{therapists: therapistService}
}

// List handles GET /api/therapists. Supports ?available=true and
// ?specialization= filters.
func (h *TherapistsHandler) List(c *fiber.Ctx) error {
	if c.Query("available") == "true" {
		therapists, err := h.therapists.ListAvailable(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewTherapistResponses(therapists)})
	}
	if specialization := c.Query("specialization"); specialization != "" {
		therapists, err := h.therapists.ListBySpecialization(c.Context(), specialization)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewTherapistResponses(therapists)})
	}

	therapists, err := h.therapists.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTherapistResponses(therapists)})
}

// Get handles GET /api/therapists/:id.
func (h *TherapistsHandler) Get(c *fiber.Ctx) error {
	therapist, err := h.therapists.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTherapistResponse(therapist)})
}

// Update handles PUT /api/therapists/:id.
func (h *TherapistsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTherapistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	therapist, err := h.therapists.Update(c.Context(), c.Params("id"), service.UpdateTherapistInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		Qualification:  req.Qualification,
		Experience:     req.Experience,
		Phone:          req.Phone,
		Bio:            req.Bio,
		Available:      req.Available,
		Password:       req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTherapistResponse(therapist)})
}

// UpdateAvailability handles PATCH /api/therapists/:id/availability.
func (h *TherapistsHandler) UpdateAvailability(c *fiber.Ctx) error {
	var req dto.UpdateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	therapist, err := h.therapists.UpdateAvailability(c.Context(), c.Params("id"), req.Available)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTherapistResponse(therapist)})
}

// Delete handles DELETE /api/therapists/:id.
func (h *TherapistsHandler) Delete(c *fiber.Ctx) error {
	if err := h.therapists.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
