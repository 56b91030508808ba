package server

import (
	"context"

	"fitlink/internal/models"
	"fitlink/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateHealthProfile(ctx context.Context, id uint, profile repository.HealthProfile) error {
	args := m.Called(ctx, id, profile)
	return args.Error(0)
}

func (m *MockUserRepository) SearchRanked(ctx context.Context, query string, excludeID uint, limit int) ([]models.User, error) {
	args := m.Called(ctx, query, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) SearchByName(ctx context.Context, query string, excludeID uint, limit int) ([]models.User, error) {
	args := m.Called(ctx, query, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockFriendRepository is a mock of the FriendRepository interface
type MockFriendRepository struct {
	mock.Mock
}

func (m *MockFriendRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	args := m.Called(ctx, friendship)
	return args.Error(0)
}

func (m *MockFriendRepository) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	args := m.Called(ctx, userID1, userID2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) GetPendingForRecipient(ctx context.Context, id, recipientID uint) (*models.Friendship, error) {
	args := m.Called(ctx, id, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) GetPendingDirected(ctx context.Context, requesterID, recipientID uint) (*models.Friendship, error) {
	args := m.Called(ctx, requesterID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) GetPendingReceived(ctx context.Context, userID uint) ([]models.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) GetPendingSent(ctx context.Context, userID uint) ([]models.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) GetAccepted(ctx context.Context, userID uint) ([]models.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	args := m.Called(ctx, friendshipID, status)
	return args.Error(0)
}

func (m *MockFriendRepository) Delete(ctx context.Context, friendshipID uint) error {
	args := m.Called(ctx, friendshipID)
	return args.Error(0)
}

func (m *MockFriendRepository) RemoveBetweenUsers(ctx context.Context, userID1, userID2 uint) error {
	args := m.Called(ctx, userID1, userID2)
	return args.Error(0)
}

// MockChatRepository is a mock of the ChatRepository interface
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateChat(ctx context.Context, userID1, userID2 uint) (*models.Chat, error) {
	args := m.Called(ctx, userID1, userID2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatRepository) GetByID(ctx context.Context, id uint) (*models.Chat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatRepository) HasParticipant(ctx context.Context, chatID, userID uint) (bool, error) {
	args := m.Called(ctx, chatID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChatRepository) AddMessage(ctx context.Context, msg *models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
