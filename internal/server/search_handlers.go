package server

import (
	"github.com/gofiber/fiber/v2"
)

// SearchUsers handles GET /search/users
// @Summary Search for users
// @Description Ranked full-text search over name and email; excludes the caller
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param query query string true "Search query"
// @Success 200 {array} models.UserSummary
// @Failure 400 {object} models.ErrorResponse
// @Router /search/users [get]
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	userID := currentUserID(c)

	results, err := s.userService.SearchUsers(c.Context(), c.Query("query"), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(results)
}
