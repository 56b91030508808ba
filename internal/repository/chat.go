// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"fitlink/internal/cache"
	"fitlink/internal/models"

	"gorm.io/gorm"
)

// ChatRepository defines the interface for chat data operations
type ChatRepository interface {
	CreateChat(ctx context.Context, userID1, userID2 uint) (*models.Chat, error)
	GetByID(ctx context.Context, id uint) (*models.Chat, error)
	HasParticipant(ctx context.Context, chatID, userID uint) (bool, error)
	AddMessage(ctx context.Context, msg *models.Message) error
}

// chatRepository implements ChatRepository
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// CreateChat creates a chat with exactly the two given participants and an
// empty message history, as a single transaction.
func (r *chatRepository) CreateChat(ctx context.Context, userID1, userID2 uint) (*models.Chat, error) {
	chat := &models.Chat{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		participants := []models.ChatParticipant{
			{ChatID: chat.ID, UserID: userID1},
			{ChatID: chat.ID, UserID: userID2},
		}
		return tx.Create(&participants).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return r.GetByID(ctx, chat.ID)
}

// GetByID loads a chat with its participants and full message history in
// insertion order.
func (r *chatRepository) GetByID(ctx context.Context, id uint) (*models.Chat, error) {
	var chat models.Chat
	if err := r.db.WithContext(ctx).
		Preload("Participants").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Messages.Sender").
		First(&chat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Chat", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &chat, nil
}

func (r *chatRepository) HasParticipant(ctx context.Context, chatID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ChatParticipant{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// AddMessage appends a message; its timestamp is assigned by the server at
// insert time. Messages are never edited or removed.
func (r *chatRepository) AddMessage(ctx context.Context, msg *models.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateChat(ctx, msg.ChatID)
	return nil
}
