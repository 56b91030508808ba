package service

import (
	"context"
	"strings"

	"fitlink/internal/middleware"
	"fitlink/internal/models"
	"fitlink/internal/repository"
)

// searchLimit caps every user search result set.
const searchLimit = 10

// UserService provides user lookup and search business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// SearchUsers matches the query against the precomputed search field
// (email + full name, lowercase), ranked; when the ranked search yields
// nothing it falls back to a case-insensitive substring match on the full
// name. The querying user is always excluded and results carry only public
// identity fields, capped at 10.
func (s *UserService) SearchUsers(ctx context.Context, query string, selfID uint) ([]models.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}

	users, err := s.userRepo.SearchRanked(ctx, query, selfID, searchLimit)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		middleware.SearchFallbacks.Inc()
		users, err = s.userRepo.SearchByName(ctx, query, selfID, searchLimit)
		if err != nil {
			return nil, err
		}
	}

	results := make([]models.UserSummary, 0, len(users))
	for i := range users {
		results = append(results, users[i].Summary())
	}
	return results, nil
}
