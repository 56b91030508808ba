// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Chat represents a one-on-one conversation between two friends.
// Chats are created only between users holding an accepted friendship
// and hold an append-only message history.
type Chat struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Participants []User    `gorm:"many2many:chat_participants;" json:"participants,omitempty"`
	Messages     []Message `gorm:"foreignKey:ChatID" json:"messages"`
}

// TableName specifies the table name for GORM
func (Chat) TableName() string {
	return "chats"
}

// HasParticipant reports whether the given user belongs to the chat.
// Requires Participants to be loaded.
func (ch *Chat) HasParticipant(userID uint) bool {
	for _, p := range ch.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// Message represents a chat message. Messages are never edited or removed;
// CreatedAt is assigned by the server at insert time.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    uint      `gorm:"not null;index" json:"chat_id"`
	SenderID  uint      `gorm:"not null;index" json:"sender_id"`
	Sender    *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// ChatParticipant is the join table backing the many2many relationship
// between chats and users.
type ChatParticipant struct {
	ChatID   uint      `gorm:"primaryKey" json:"chat_id"`
	UserID   uint      `gorm:"primaryKey" json:"user_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// TableName specifies the table name for GORM
func (ChatParticipant) TableName() string {
	return "chat_participants"
}
