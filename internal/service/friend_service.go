// Package service contains the application's business logic.
package service

import (
	"context"

	"fitlink/internal/models"
	"fitlink/internal/repository"
)

// FriendService implements the friendship state machine for unordered user
// pairs: none -> pending -> accepted/rejected, with cancel and removal
// collapsing back to none. It enforces the at-most-one-active-record
// invariant across both physical orderings of a pair before insert; the
// composite unique index is only the backstop for concurrent requests.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// RequestLists groups pending requests by direction.
type RequestLists struct {
	Sent     []models.Friendship `json:"sent"`
	Received []models.Friendship `json:"received"`
}

// SendRequest sends a friend request to the recipient. An existing pending
// or accepted record for the pair, in either direction, is a conflict; a
// rejected record is deleted and replaced by the new request.
func (s *FriendService) SendRequest(ctx context.Context, requesterID, recipientID uint) (*models.Friendship, error) {
	if requesterID == recipientID {
		return nil, models.NewValidationError("Cannot send a friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	existing, err := s.friendRepo.GetBetweenUsers(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.FriendshipStatusPending:
			return nil, models.NewConflictError("Friend request already pending")
		case models.FriendshipStatusAccepted:
			return nil, models.NewConflictError("Friendship already exists")
		case models.FriendshipStatusRejected:
			// A rejected record does not block a fresh request.
			if err := s.friendRepo.Delete(ctx, existing.ID); err != nil {
				return nil, err
			}
		}
	}

	friendship := &models.Friendship{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      models.FriendshipStatusPending,
	}
	if err := s.friendRepo.Create(ctx, friendship); err != nil {
		// A unique violation here means a concurrent request won the race.
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, friendship.ID)
}

// AcceptRequest transitions a pending request to accepted. Only the
// recipient of that exact pending record may accept; everything else is
// NotFound, including a second accept of the same id.
func (s *FriendService) AcceptRequest(ctx context.Context, recipientID, requestID uint) (*models.Friendship, error) {
	friendship, err := s.friendRepo.GetPendingForRecipient(ctx, requestID, recipientID)
	if err != nil {
		return nil, err
	}

	if err := s.friendRepo.UpdateStatus(ctx, friendship.ID, models.FriendshipStatusAccepted); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, friendship.ID)
}

// RejectRequest transitions a pending request to rejected. The record is
// retained so the pair's history is visible until a new request replaces it.
func (s *FriendService) RejectRequest(ctx context.Context, recipientID, requestID uint) (*models.Friendship, error) {
	friendship, err := s.friendRepo.GetPendingForRecipient(ctx, requestID, recipientID)
	if err != nil {
		return nil, err
	}

	if err := s.friendRepo.UpdateStatus(ctx, friendship.ID, models.FriendshipStatusRejected); err != nil {
		return nil, err
	}

	friendship.Status = models.FriendshipStatusRejected
	return friendship, nil
}

// CancelRequest deletes the requester's own pending request to recipientID,
// returning the pair to the none state.
func (s *FriendService) CancelRequest(ctx context.Context, requesterID, recipientID uint) error {
	friendship, err := s.friendRepo.GetPendingDirected(ctx, requesterID, recipientID)
	if err != nil {
		return err
	}
	return s.friendRepo.Delete(ctx, friendship.ID)
}

// ListRequests returns the user's pending requests grouped into sent and
// received, with the counterpart user resolved on each.
func (s *FriendService) ListRequests(ctx context.Context, userID uint) (*RequestLists, error) {
	sent, err := s.friendRepo.GetPendingSent(ctx, userID)
	if err != nil {
		return nil, err
	}
	received, err := s.friendRepo.GetPendingReceived(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &RequestLists{Sent: sent, Received: received}, nil
}

// ListFriends returns the counterpart of every accepted friendship touching
// the user.
func (s *FriendService) ListFriends(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	friendships, err := s.friendRepo.GetAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]models.UserSummary, 0, len(friendships))
	for i := range friendships {
		other := friendships[i].OtherUser(userID)
		friends = append(friends, other.Summary())
	}
	return friends, nil
}

// RemoveFriend deletes the accepted friendship between the two users,
// whichever direction it was stored in. Removing via (A,B) and via (B,A)
// are equivalent.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	friendship, err := s.friendRepo.GetBetweenUsers(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if friendship == nil || friendship.Status != models.FriendshipStatusAccepted {
		return models.NewNotFoundError("Friendship", friendID)
	}

	return s.friendRepo.RemoveBetweenUsers(ctx, userID, friendID)
}

// AreFriends reports whether an accepted friendship exists between the two
// users. The chat service gates chat creation on this.
func (s *FriendService) AreFriends(ctx context.Context, userID1, userID2 uint) (bool, error) {
	friendship, err := s.friendRepo.GetBetweenUsers(ctx, userID1, userID2)
	if err != nil {
		return false, err
	}
	return friendship != nil && friendship.Status == models.FriendshipStatusAccepted, nil
}
