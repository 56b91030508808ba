package server

import (
	"net/http"
	"testing"

	"fitlink/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendFriendRequest(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		mockSetup      func(*MockUserRepository, *MockFriendRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]any{"recipientId": 2},
			mockSetup: func(u *MockUserRepository, f *MockFriendRepository) {
				u.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
				f.On("GetBetweenUsers", mock.Anything, uint(1), uint(2)).Return(nil, nil)
				f.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*models.Friendship).ID = 10
				})
				f.On("GetByID", mock.Anything, uint(10)).Return(&models.Friendship{
					ID: 10, RequesterID: 1, RecipientID: 2, Status: models.FriendshipStatusPending,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Self request",
			body: map[string]any{"recipientId": 1},
			mockSetup: func(u *MockUserRepository, f *MockFriendRepository) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown recipient",
			body: map[string]any{"recipientId": 99},
			mockSetup: func(u *MockUserRepository, f *MockFriendRepository) {
				u.On("GetByID", mock.Anything, uint(99)).Return(nil, models.NewNotFoundError("User", 99))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Already friends",
			body: map[string]any{"recipientId": 2},
			mockSetup: func(u *MockUserRepository, f *MockFriendRepository) {
				u.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
				f.On("GetBetweenUsers", mock.Anything, uint(1), uint(2)).Return(&models.Friendship{
					ID: 5, RequesterID: 2, RecipientID: 1, Status: models.FriendshipStatusAccepted,
				}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing recipient",
			body:           map[string]any{},
			mockSetup:      func(u *MockUserRepository, f *MockFriendRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			userRepo := new(MockUserRepository)
			friendRepo := new(MockFriendRepository)
			tt.mockSetup(userRepo, friendRepo)
			s := newTestServer(userRepo, friendRepo, new(MockChatRepository))
			app.Post("/api/friend-request", asUser(1), s.SendFriendRequest)

			resp := postJSON(t, app, "/api/friend-request", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				body := decodeBody(t, resp)
				assert.Equal(t, "Friend request sent", body["message"])
				assert.Equal(t, float64(10), body["friendshipId"])
			}
			userRepo.AssertExpectations(t)
			friendRepo.AssertExpectations(t)
		})
	}
}

func TestAcceptFriendRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app := fiber.New()
		friendRepo := new(MockFriendRepository)
		friendRepo.On("GetPendingForRecipient", mock.Anything, uint(10), uint(1)).Return(&models.Friendship{
			ID: 10, RequesterID: 2, RecipientID: 1, Status: models.FriendshipStatusPending,
		}, nil)
		friendRepo.On("UpdateStatus", mock.Anything, uint(10), models.FriendshipStatusAccepted).Return(nil)
		friendRepo.On("GetByID", mock.Anything, uint(10)).Return(&models.Friendship{
			ID: 10, RequesterID: 2, RecipientID: 1, Status: models.FriendshipStatusAccepted,
		}, nil)
		s := newTestServer(new(MockUserRepository), friendRepo, new(MockChatRepository))
		app.Put("/api/friend-request/:id/accept", asUser(1), s.AcceptFriendRequest)

		req, _ := http.NewRequest(http.MethodPut, "/api/friend-request/10/accept", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		friendRepo.AssertExpectations(t)
	})

	t.Run("Not the recipient", func(t *testing.T) {
		app := fiber.New()
		friendRepo := new(MockFriendRepository)
		friendRepo.On("GetPendingForRecipient", mock.Anything, uint(10), uint(3)).
			Return(nil, models.NewNotFoundError("Friend request", 10))
		s := newTestServer(new(MockUserRepository), friendRepo, new(MockChatRepository))
		app.Put("/api/friend-request/:id/accept", asUser(3), s.AcceptFriendRequest)

		req, _ := http.NewRequest(http.MethodPut, "/api/friend-request/10/accept", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Bad id", func(t *testing.T) {
		app := fiber.New()
		s := newTestServer(new(MockUserRepository), new(MockFriendRepository), new(MockChatRepository))
		app.Put("/api/friend-request/:id/accept", asUser(1), s.AcceptFriendRequest)

		req, _ := http.NewRequest(http.MethodPut, "/api/friend-request/abc/accept", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListFriendRequests(t *testing.T) {
	app := fiber.New()
	friendRepo := new(MockFriendRepository)
	friendRepo.On("GetPendingSent", mock.Anything, uint(1)).Return([]models.Friendship{
		{ID: 4, RequesterID: 1, RecipientID: 5, Status: models.FriendshipStatusPending},
	}, nil)
	friendRepo.On("GetPendingReceived", mock.Anything, uint(1)).Return([]models.Friendship{}, nil)
	s := newTestServer(new(MockUserRepository), friendRepo, new(MockChatRepository))
	app.Get("/api/friend-requests", asUser(1), s.ListFriendRequests)

	req, _ := http.NewRequest(http.MethodGet, "/api/friend-requests", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	sent := body["sent"].([]any)
	require.Len(t, sent, 1)
	assert.Empty(t, body["received"])
	friendRepo.AssertExpectations(t)
}

func TestGetFriends(t *testing.T) {
	app := fiber.New()
	friendRepo := new(MockFriendRepository)
	friendRepo.On("GetAccepted", mock.Anything, uint(1)).Return([]models.Friendship{
		{
			RequesterID: 1, RecipientID: 2,
			Recipient: models.User{ID: 2, Email: "b@example.com", FirstName: "Bea", LastName: "Second", FullName: "Bea Second"},
		},
	}, nil)
	s := newTestServer(new(MockUserRepository), friendRepo, new(MockChatRepository))
	app.Get("/api/friends", asUser(1), s.GetFriends)

	req, _ := http.NewRequest(http.MethodGet, "/api/friends", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var friends []map[string]any
	decodeInto(t, resp, &friends)
	require.Len(t, friends, 1)
	assert.Equal(t, float64(2), friends[0]["id"])
	assert.Equal(t, "Bea Second", friends[0]["full_name"])
	// Summaries must not leak health data.
	_, hasBMI := friends[0]["bmi"]
	assert.False(t, hasBMI)
}

func TestRemoveFriend(t *testing.T) {
	app := fiber.New()
	friendRepo := new(MockFriendRepository)
	friendRepo.On("GetBetweenUsers", mock.Anything, uint(1), uint(2)).Return(&models.Friendship{
		ID: 5, RequesterID: 2, RecipientID: 1, Status: models.FriendshipStatusAccepted,
	}, nil)
	friendRepo.On("RemoveBetweenUsers", mock.Anything, uint(1), uint(2)).Return(nil)
	s := newTestServer(new(MockUserRepository), friendRepo, new(MockChatRepository))
	app.Delete("/api/friend/:friendId", asUser(1), s.RemoveFriend)

	req, _ := http.NewRequest(http.MethodDelete, "/api/friend/2", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	friendRepo.AssertExpectations(t)
}

func TestCancelFriendRequest(t *testing.T) {
	app := fiber.New()
	friendRepo := new(MockFriendRepository)
	friendRepo.On("GetPendingDirected", mock.Anything, uint(1), uint(2)).Return(&models.Friendship{ID: 6}, nil)
	friendRepo.On("Delete", mock.Anything, uint(6)).Return(nil)
	s := newTestServer(new(MockUserRepository), friendRepo, new(MockChatRepository))
	app.Delete("/api/friend-request/:recipientId", asUser(1), s.CancelFriendRequest)

	req, _ := http.NewRequest(http.MethodDelete, "/api/friend-request/2", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	friendRepo.AssertExpectations(t)
}
