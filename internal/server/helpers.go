package server

import (
	"strconv"
	"strings"

	"fitlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	tokenIssuer   = "fitlink-api"
	tokenAudience = "fitlink-client"
)

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// parseIDParam parses a positive integer route parameter.
// The label feeds the error message, e.g. "friend request ID".
func parseIDParam(c *fiber.Ctx, name, label string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + label)
	}
	return uint(id), nil
}

// respondServiceError writes a service-layer error with the status implied
// by its error code.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// normalizeEmail canonicalizes an email the same way the search field does.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
