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

func TestSearchUsers(t *testing.T) {
	t.Run("Returns summaries", func(t *testing.T) {
		app := fiber.New()
		userRepo := new(MockUserRepository)
		userRepo.On("SearchRanked", mock.Anything, "zelda", uint(1), 10).Return([]models.User{
			{ID: 2, Email: "z@example.com", FirstName: "Zelda", LastName: "F", FullName: "Zelda F", Password: "hash", BMI: 22},
		}, nil)
		s := newTestServer(userRepo, new(MockFriendRepository), new(MockChatRepository))
		app.Get("/search/users", asUser(1), s.SearchUsers)

		req, _ := http.NewRequest(http.MethodGet, "/search/users?query=zelda", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var results []map[string]any
		decodeInto(t, resp, &results)
		require.Len(t, results, 1)
		assert.Equal(t, float64(2), results[0]["id"])
		assert.Equal(t, "Zelda F", results[0]["full_name"])
		// Only public identity fields cross the wire.
		_, hasPassword := results[0]["password"]
		assert.False(t, hasPassword)
		_, hasBMI := results[0]["bmi"]
		assert.False(t, hasBMI)
	})

	t.Run("Missing query", func(t *testing.T) {
		app := fiber.New()
		s := newTestServer(new(MockUserRepository), new(MockFriendRepository), new(MockChatRepository))
		app.Get("/search/users", asUser(1), s.SearchUsers)

		req, _ := http.NewRequest(http.MethodGet, "/search/users", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
