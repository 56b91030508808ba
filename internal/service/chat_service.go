package service

import (
	"context"
	"strings"

	"fitlink/internal/models"
	"fitlink/internal/repository"
)

// ChatService provides one-on-one chat business logic. Chats are gated by
// the friendship state machine: only users holding an accepted friendship
// may open one.
type ChatService struct {
	chatRepo   repository.ChatRepository
	friendRepo repository.FriendRepository
}

// NewChatService returns a new ChatService.
func NewChatService(chatRepo repository.ChatRepository, friendRepo repository.FriendRepository) *ChatService {
	return &ChatService{
		chatRepo:   chatRepo,
		friendRepo: friendRepo,
	}
}

// CreateChat opens a chat between the initiator and the other party.
// Forbidden unless an accepted friendship exists between them.
func (s *ChatService) CreateChat(ctx context.Context, initiatorID, otherID uint) (*models.Chat, error) {
	friendship, err := s.friendRepo.GetBetweenUsers(ctx, initiatorID, otherID)
	if err != nil {
		return nil, err
	}
	if friendship == nil || friendship.Status != models.FriendshipStatusAccepted {
		return nil, models.NewForbiddenError("You must be friends to start a chat")
	}

	return s.chatRepo.CreateChat(ctx, initiatorID, otherID)
}

// GetChat returns the chat with participants and full message history in
// insertion order. NotFound unless the requester is a participant; a chat
// the requester does not belong to is indistinguishable from a missing one.
func (s *ChatService) GetChat(ctx context.Context, chatID, requesterID uint) (*models.Chat, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(requesterID) {
		return nil, models.NewNotFoundError("Chat", chatID)
	}
	return chat, nil
}

// SendMessage appends a message to the chat with a server-assigned
// timestamp and returns it. NotFound unless the sender is a participant.
func (s *ChatService) SendMessage(ctx context.Context, chatID, senderID uint, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Message content is required")
	}

	ok, err := s.chatRepo.HasParticipant(ctx, chatID, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("Chat", chatID)
	}

	msg := &models.Message{
		ChatID:   chatID,
		SenderID: senderID,
		Content:  content,
	}
	if err := s.chatRepo.AddMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
