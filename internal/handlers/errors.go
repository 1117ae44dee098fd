package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/example/otpauth/internal/services"
)

// errorJSON maps workflow errors to the wire shape: domain errors become
// 400 with their messages, everything else a generic 500.
func errorJSON(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return errorList(c, fiber.StatusBadRequest, ve.Messages...)
	}

	var ce *services.ConflictError
	if errors.As(err, &ce) {
		return errorList(c, fiber.StatusBadRequest, ce.Msg)
	}

	var ae *services.AuthError
	if errors.As(err, &ae) {
		return errorList(c, fiber.StatusBadRequest, ae.Msg)
	}

	var ne *services.NotFoundError
	if errors.As(err, &ne) {
		return errorList(c, fiber.StatusBadRequest, ne.Msg)
	}

	log.Printf("internal error: %v", err)
	return errorList(c, fiber.StatusInternalServerError, "Server Error")
}

func errorList(c *fiber.Ctx, status int, msgs ...string) error {
	items := make([]fiber.Map, 0, len(msgs))
	for _, msg := range msgs {
		items = append(items, fiber.Map{"msg": msg})
	}
	return c.Status(status).JSON(fiber.Map{"errors": items})
}
