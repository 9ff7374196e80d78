package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mindconnect/mind-service/internal/api/dto"
	"github.com/mindconnect/mind-service/internal/service"
)

// SessionsHandler exposes session booking endpoints. These routes sit under
// the authentication bypass prefix, so callers may be anonymous.
type SessionsHandler struct {
	sessions *service.SessionService
}

// NewSessionsHandler constructs handler.
func NewSessionsHandler(sessionService *service.SessionService) *SessionsHandler {
	return &SessionsHandler{sessions: sessionService}
}

// Book handles POST /api/sessions.
func (h *SessionsHandler) Book(c *fiber.Ctx) error {
	var req dto.BookSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.UserID == "" || req.TherapistID == "" {
		return fiber.NewError(http.StatusBadRequest, "userId and therapistId required")
	}

	session, err := h.sessions.Book(c.Context(), service.BookSessionInput{
		UserID:      req.UserID,
		TherapistID: req.TherapistID,
		SessionDate: req.SessionDate,
		SessionType: req.SessionType,
		DurationMin: req.DurationMin,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewSessionResponse(session)})
}

// List handles GET /api/sessions. Supports ?userId= and ?therapistId=.
func (h *SessionsHandler) List(c *fiber.Ctx) error {
	if userID := c.Query("userId"); userID != "" {
		sessions, err := h.sessions.ListByUser(c.Context(), userID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewSessionResponses(sessions)})
	}
	if therapistID := c.Query("therapistId"); therapistID != "" {
		sessions, err := h.sessions.ListByTherapist(c.Context(), therapistID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewSessionResponses(sessions)})
	}

	sessions, err := h.sessions.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSessionResponses(sessions)})
}

// Get handles GET /api/sessions/:id.
func (h *SessionsHandler) Get(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSessionResponse(session)})
}

// UpdateStatus handles PATCH /api/sessions/:id/status.
func (h *SessionsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	session, err := h.sessions.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSessionResponse(session)})
}

// UpdateNotes handles PATCH /api/sessions/:id/notes.
func (h *SessionsHandler) UpdateNotes(c *fiber.Ctx) error {
	var req dto.UpdateSessionNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	session, err := h.sessions.UpdateNotes(c.Context(), c.Params("id"), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSessionResponse(session)})
}

// Cancel handles DELETE /api/sessions/:id.
func (h *SessionsHandler) Cancel(c *fiber.Ctx) error {
	session, err := h.sessions.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSessionResponse(session)})
}
