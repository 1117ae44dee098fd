package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/otpauth/internal/middleware"
	"github.com/example/otpauth/internal/services"
	"github.com/example/otpauth/internal/store"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	svc   *services.AuthService
	users store.UserStore
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc *services.AuthService, users store.UserStore) *AuthHandler {
	return &AuthHandler{svc: svc, users: users}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new unverified account and emails an OTP.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return errorList(c, fiber.StatusBadRequest, "invalid request body")
	}

	msg, err := h.svc.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"msg": msg})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a verified user and returns a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorList(c, fiber.StatusBadRequest, "invalid request body")
	}

	token, err := h.svc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}

type verifyOtpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyOtp validates the emailed code and marks the account verified.
func (h *AuthHandler) VerifyOtp(c *fiber.Ctx) error {
	var req verifyOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return errorList(c, fiber.StatusBadRequest, "invalid request body")
	}

	msg, err := h.svc.VerifyOtp(c.Context(), req.Email, req.OTP)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"msg": msg})
}

// Me returns the authenticated user's public profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return errorList(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.users.FindByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errorList(c, fiber.StatusNotFound, "User not found")
		}
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"verified":   user.Verified,
		"created_at": user.CreatedAt,
	})
}
