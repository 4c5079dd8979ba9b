package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/domain"
)

// writeError maps a domain error onto the HTTP error envelope. Anything not
// in the taxonomy is a 500 with the raw message.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "required fields missing or invalid"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid credentials"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "account blocked or not allowed"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	case errors.Is(err, domain.ErrAlreadyDeleted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_DELETED", Message: "resource already deleted"})
	case errors.Is(err, domain.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_TAKEN", Message: "email already registered"})
	case errors.Is(err, domain.ErrPhoneTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PHONE_TAKEN", Message: "phone already registered"})
	case errors.Is(err, domain.ErrPANTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PAN_TAKEN", Message: "PAN already registered"})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "resource already exists"})
	case errors.Is(err, domain.ErrUploadFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: "asset upload failed"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// badRequest writes the body-parse failure envelope.
func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
}
