package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mindconnect/mind-service/internal/api/dto"
	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/service"
)

// AuthHandler exposes login and registration endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.auth.Login(c.Context(), req.Email, req.Password, req.UserType, c.IP())
	if err != nil {
		return err
	}

	var account any
	if result.Kind == domain.AccountKindTherapist {
		account = dto.NewTherapistResponse(result.Therapist)
	} else {
		account = dto.NewUserResponse(result.User)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"auth": dto.AuthResponse{
				Token:     result.Token,
				ExpiresAt: result.ExpiresAt,
				UserType:  strings.ToLower(string(result.Kind)),
			},
			"user": account,
		},
	})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	user, err := h.auth.RegisterUser(c.Context(), service.RegisterUserInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Password:         req.Password,
		Phone:            req.Phone,
		Age:              req.Age,
		EmergencyContact: req.EmergencyContact,
		AccountTypeHint:  req.UserType,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewUserResponse(user),
	})
}

// RegisterTherapist handles POST /api/auth/register-therapist.
func (h *AuthHandler) RegisterTherapist(c *fiber.Ctx) error {
	var req dto.RegisterTherapistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	therapist, err := h.auth.RegisterTherapist(c.Context(), service.RegisterTherapistInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		Specialization: req.Specialization,
		Qualification:  req.Qualification,
		Experience:     req.Experience,
		Phone:          req.Phone,
		Bio:            req.Bio,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewTherapistResponse(therapist),
	})
}
