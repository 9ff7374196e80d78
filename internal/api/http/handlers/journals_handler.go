package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mindconnect/mind-service/internal/api/dto"
	"github.com/mindconnect/mind-service/internal/auth"
	"github.com/mindconnect/mind-service/internal/service"
)

// JournalsHandler exposes journal CRUD scoped to the authenticated user.
type JournalsHandler struct {
	journals *service.JournalService
}

// NewJournalsHandler constructs handler.
func NewJournalsHandler(journalService *service.JournalService) *JournalsHandler {
	return &JournalsHandler{journals: journalService}
}

func currentUserID(c *fiber.Ctx) (string, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return "", fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	return principal.User.ID, nil
}

// Create handles POST /api/journals.
func (h *JournalsHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.JournalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	journal, err := h.journals.Create(c.Context(), userID, service.JournalInput{
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewJournalResponse(journal)})
}

// List handles GET /api/journals.
func (h *JournalsHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	journals, err := h.journals.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJournalResponses(journals)})
}

// Get handles GET /api/journals/:id.
func (h *JournalsHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	journal, err := h.journals.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJournalResponse(journal)})
}

// Update handles PUT /api/journals/:id.
func (h *JournalsHandler) Update(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.JournalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	journal, err := h.journals.Update(c.Context(), userID, c.Params("id"), service.JournalInput{
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJournalResponse(journal)})
}

// Delete handles DELETE /api/journals/:id.
func (h *JournalsHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.journals.Delete(c.Context(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
