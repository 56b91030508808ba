// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// FriendshipStatus represents the status of a friendship request.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a pending friendship request.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusAccepted indicates an accepted friendship request.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	// FriendshipStatusRejected indicates a rejected friendship request.
	// Rejected records are retained until the requester sends a new request.
	FriendshipStatusRejected FriendshipStatus = "rejected"
)

// Friendship represents a friendship relationship between two users.
//
// The unique index on (requester_id, recipient_id) is only the storage
// backstop: the same logical pair can be stored in either direction, so the
// service layer checks both orderings before insert. A unique violation on
// insert signals a concurrent duplicate request.
type Friendship struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequesterID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"requester_id"`
	RecipientID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"recipient_id"`
	Status      FriendshipStatus `gorm:"type:varchar(20);default:'pending';index:idx_friendships_status" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relationships
	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}

// Active reports whether the record blocks a new request for its pair.
// Pending and accepted records are active; rejected ones may be replaced.
func (f *Friendship) Active() bool {
	return f.Status == FriendshipStatusPending || f.Status == FriendshipStatusAccepted
}

// OtherUser returns the counterpart of the given user in this friendship.
// Requires Requester and Recipient to be loaded.
func (f *Friendship) OtherUser(userID uint) User {
	if f.RequesterID == userID {
		return f.Recipient
	}
	return f.Requester
}
