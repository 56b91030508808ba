package server

import (
	"fitlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateChat handles POST /api/chat
// @Summary Create a chat with a friend
// @Description Open a chat between the caller and one of their friends
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{participantId=int} true "Other participant"
// @Success 201 {object} models.Chat
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/chat [post]
func (s *Server) CreateChat(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		ParticipantID uint `json:"participantId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ParticipantID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("participantId is required"))
	}

	chat, err := s.chatService.CreateChat(c.Context(), userID, req.ParticipantID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(chat)
}

// GetChat handles GET /api/chat/:id
// @Summary Get a chat with its message history
// @Description Returns the chat only if the caller is a participant
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat ID"
// @Success 200 {object} models.Chat
// @Failure 404 {object} models.ErrorResponse
// @Router /api/chat/{id} [get]
func (s *Server) GetChat(c *fiber.Ctx) error {
	userID := currentUserID(c)

	chatID, err := parseIDParam(c, "id", "chat ID")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	chat, err := s.chatService.GetChat(c.Context(), chatID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(chat)
}

// SendMessage handles POST /api/chat/:id/message
// @Summary Send a message in a chat
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat ID"
// @Param request body object{content=string} true "Message content"
// @Success 201 {object} models.Message
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/chat/{id}/message [post]
func (s *Server) SendMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	chatID, err := parseIDParam(c, "id", "chat ID")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.chatService.SendMessage(c.Context(), chatID, userID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}
