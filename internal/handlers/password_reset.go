package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/otpauth/internal/services"
)

// PasswordResetHandler manages forgot-password endpoints.
type PasswordResetHandler struct {
	svc *services.AuthService
}

// NewPasswordResetHandler constructs a PasswordResetHandler.
func NewPasswordResetHandler(svc *services.AuthService) *PasswordResetHandler {
	return &PasswordResetHandler{svc: svc}
}

type resetRequestRequest struct {
	Email string `json:"email"`
}

// RequestReset issues a fresh OTP and emails it to the user.
func (h *PasswordResetHandler) RequestReset(c *fiber.Ctx) error {
	var req resetRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return errorList(c, fiber.StatusBadRequest, "invalid request body")
	}

	msg, err := h.svc.RequestPasswordReset(c.Context(), req.Email)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"msg": msg})
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword replaces the password after OTP verification.
func (h *PasswordResetHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return errorList(c, fiber.StatusBadRequest, "invalid request body")
	}

	msg, err := h.svc.ResetPassword(c.Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"msg": msg})
}
