package server

import (
	"fitlink/internal/middleware"
	"fitlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friend-request
// @Summary Send a friend request
// @Description Create a pending friend request to another user
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{recipientId=int} true "Recipient"
// @Success 201 {object} object{message=string,friendshipId=int}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/friend-request [post]
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		RecipientID uint `json:"recipientId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.RecipientID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("recipientId is required"))
	}

	friendship, err := s.friendService.SendRequest(c.Context(), userID, req.RecipientID)
	if err != nil {
		if models.IsCode(err, "CONFLICT") {
			middleware.FriendRequestOutcomes.WithLabelValues("duplicate").Inc()
		}
		return respondServiceError(c, err)
	}

	middleware.FriendRequestOutcomes.WithLabelValues("sent").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Friend request sent",
		"friendshipId": friendship.ID,
	})
}

// AcceptFriendRequest handles PUT /api/friend-request/:id/accept
// @Summary Accept a friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Friend request ID"
// @Success 200 {object} object{message=string,friendship=models.Friendship}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/friend-request/{id}/accept [put]
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)

	requestID, err := parseIDParam(c, "id", "friend request ID")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	friendship, err := s.friendService.AcceptRequest(c.Context(), userID, requestID)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.FriendRequestOutcomes.WithLabelValues("accepted").Inc()
	return c.JSON(fiber.Map{
		"message":    "Friend request accepted",
		"friendship": friendship,
	})
}

// RejectFriendRequest handles PUT /api/friend-request/:id/reject
// @Summary Reject a friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Friend request ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/friend-request/{id}/reject [put]
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)

	requestID, err := parseIDParam(c, "id", "friend request ID")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if _, err := s.friendService.RejectRequest(c.Context(), userID, requestID); err != nil {
		return respondServiceError(c, err)
	}

	middleware.FriendRequestOutcomes.WithLabelValues("rejected").Inc()
	return c.JSON(fiber.Map{
		"message": "Friend request rejected",
	})
}

// CancelFriendRequest handles DELETE /api/friend-request/:recipientId
// @Summary Cancel a sent friend request
// @Description Withdraw a pending request the caller sent to the given user
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param recipientId path int true "Recipient user ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/friend-request/{recipientId} [delete]
func (s *Server) CancelFriendRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)

	recipientID, err := parseIDParam(c, "recipientId", "recipient ID")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.friendService.CancelRequest(c.Context(), userID, recipientID); err != nil {
		return respondServiceError(c, err)
	}

	middleware.FriendRequestOutcomes.WithLabelValues("cancelled").Inc()
	return c.JSON(fiber.Map{
		"message": "Friend request cancelled",
	})
}

// ListFriendRequests handles GET /api/friend-requests
// @Summary List pending friend requests
// @Description Pending requests the caller sent and received, newest first
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{sent=[]models.Friendship,received=[]models.Friendship}
// @Router /api/friend-requests [get]
func (s *Server) ListFriendRequests(c *fiber.Ctx) error {
	userID := currentUserID(c)

	lists, err := s.friendService.ListRequests(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(lists)
}

// GetFriends handles GET /api/friends
// @Summary List friends
// @Description All users the caller has an accepted friendship with
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserSummary
// @Router /api/friends [get]
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID := currentUserID(c)

	friends, err := s.friendService.ListFriends(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(friends)
}

// RemoveFriend handles DELETE /api/friend/:friendId
// @Summary Remove a friend
// @Description Dissolve an accepted friendship; either side may remove
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param friendId path int true "Friend user ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/friend/{friendId} [delete]
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID := currentUserID(c)

	friendID, err := parseIDParam(c, "friendId", "friend ID")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.friendService.RemoveFriend(c.Context(), userID, friendID); err != nil {
		return respondServiceError(c, err)
	}

	middleware.FriendRequestOutcomes.WithLabelValues("removed").Inc()
	return c.JSON(fiber.Map{
		"message": "Friend removed",
	})
}
