package service

import (
	"context"

	"fitlink/internal/models"
	"fitlink/internal/repository"
)

type friendRepoStub struct {
	createFn                 func(context.Context, *models.Friendship) error
	getByIDFn                func(context.Context, uint) (*models.Friendship, error)
	getBetweenUsersFn        func(context.Context, uint, uint) (*models.Friendship, error)
	getPendingForRecipientFn func(context.Context, uint, uint) (*models.Friendship, error)
	getPendingDirectedFn     func(context.Context, uint, uint) (*models.Friendship, error)
	getPendingReceivedFn     func(context.Context, uint) ([]models.Friendship, error)
	getPendingSentFn         func(context.Context, uint) ([]models.Friendship, error)
	getAcceptedFn            func(context.Context, uint) ([]models.Friendship, error)
	updateStatusFn           func(context.Context, uint, models.FriendshipStatus) error
	deleteFn                 func(context.Context, uint) error
	removeBetweenUsersFn     func(context.Context, uint, uint) error
}

func (s *friendRepoStub) Create(ctx context.Context, friendship *models.Friendship) error {
	return s.createFn(ctx, friendship)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	return s.getBetweenUsersFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) GetPendingForRecipient(ctx context.Context, id, recipientID uint) (*models.Friendship, error) {
	return s.getPendingForRecipientFn(ctx, id, recipientID)
}
func (s *friendRepoStub) GetPendingDirected(ctx context.Context, requesterID, recipientID uint) (*models.Friendship, error) {
	return s.getPendingDirectedFn(ctx, requesterID, recipientID)
}
func (s *friendRepoStub) GetPendingReceived(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingReceivedFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingSent(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingSentFn(ctx, userID)
}
func (s *friendRepoStub) GetAccepted(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getAcceptedFn(ctx, userID)
}
func (s *friendRepoStub) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	return s.updateStatusFn(ctx, friendshipID, status)
}
func (s *friendRepoStub) Delete(ctx context.Context, friendshipID uint) error {
	return s.deleteFn(ctx, friendshipID)
}
func (s *friendRepoStub) RemoveBetweenUsers(ctx context.Context, userID1, userID2 uint) error {
	return s.removeBetweenUsersFn(ctx, userID1, userID2)
}

type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	updateHealthProfileFn func(context.Context, uint, repository.HealthProfile) error
	searchRankedFn        func(context.Context, string, uint, int) ([]models.User, error)
	searchByNameFn        func(context.Context, string, uint, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdateHealthProfile(ctx context.Context, id uint, profile repository.HealthProfile) error {
	return s.updateHealthProfileFn(ctx, id, profile)
}
func (s *userRepoStub) SearchRanked(ctx context.Context, query string, excludeID uint, limit int) ([]models.User, error) {
	return s.searchRankedFn(ctx, query, excludeID, limit)
}
func (s *userRepoStub) SearchByName(ctx context.Context, query string, excludeID uint, limit int) ([]models.User, error) {
	return s.searchByNameFn(ctx, query, excludeID, limit)
}

type chatRepoStub struct {
	createChatFn     func(context.Context, uint, uint) (*models.Chat, error)
	getByIDFn        func(context.Context, uint) (*models.Chat, error)
	hasParticipantFn func(context.Context, uint, uint) (bool, error)
	addMessageFn     func(context.Context, *models.Message) error
}

func (s *chatRepoStub) CreateChat(ctx context.Context, userID1, userID2 uint) (*models.Chat, error) {
	return s.createChatFn(ctx, userID1, userID2)
}
func (s *chatRepoStub) GetByID(ctx context.Context, id uint) (*models.Chat, error) {
	return s.getByIDFn(ctx, id)
}
func (s *chatRepoStub) HasParticipant(ctx context.Context, chatID, userID uint) (bool, error) {
	return s.hasParticipantFn(ctx, chatID, userID)
}
func (s *chatRepoStub) AddMessage(ctx context.Context, msg *models.Message) error {
	return s.addMessageFn(ctx, msg)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		updateHealthProfileFn: func(context.Context, uint, repository.HealthProfile) error {
			return nil
		},
		searchRankedFn: func(context.Context, string, uint, int) ([]models.User, error) { return nil, nil },
		searchByNameFn: func(context.Context, string, uint, int) ([]models.User, error) { return nil, nil },
	}
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:          func(context.Context, *models.Friendship) error { return nil },
		getByIDFn:         func(context.Context, uint) (*models.Friendship, error) { return &models.Friendship{}, nil },
		getBetweenUsersFn: func(context.Context, uint, uint) (*models.Friendship, error) { return nil, nil },
		getPendingForRecipientFn: func(context.Context, uint, uint) (*models.Friendship, error) {
			return &models.Friendship{}, nil
		},
		getPendingDirectedFn: func(context.Context, uint, uint) (*models.Friendship, error) {
			return &models.Friendship{}, nil
		},
		getPendingReceivedFn: func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		getPendingSentFn:     func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		getAcceptedFn:        func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		updateStatusFn:       func(context.Context, uint, models.FriendshipStatus) error { return nil },
		deleteFn:             func(context.Context, uint) error { return nil },
		removeBetweenUsersFn: func(context.Context, uint, uint) error { return nil },
	}
}

func noopChatRepo() *chatRepoStub {
	return &chatRepoStub{
		createChatFn:     func(context.Context, uint, uint) (*models.Chat, error) { return &models.Chat{}, nil },
		getByIDFn:        func(context.Context, uint) (*models.Chat, error) { return &models.Chat{}, nil },
		hasParticipantFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
		addMessageFn:     func(context.Context, *models.Message) error { return nil },
	}
}
