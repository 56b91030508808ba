// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"fitlink/internal/cache"
	"fitlink/internal/models"

	"gorm.io/gorm"
)

// HealthProfile is the set of user columns overwritten together by the
// metrics calculator. Last write wins; there is no versioning.
type HealthProfile struct {
	Height        float64
	Weight        float64
	Age           int
	Gender        models.Gender
	ActivityLevel models.ActivityLevel
	BMI           float64
	IdealWeight   float64
	MetabolicRate float64
	TDEE          float64
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdateHealthProfile(ctx context.Context, id uint, profile HealthProfile) error
	SearchRanked(ctx context.Context, query string, excludeID uint, limit int) ([]models.User, error)
	SearchByName(ctx context.Context, query string, excludeID uint, limit int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("A user with this email already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) UpdateHealthProfile(ctx context.Context, id uint, profile HealthProfile) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"height":         profile.Height,
			"weight":         profile.Weight,
			"age":            profile.Age,
			"gender":         profile.Gender,
			"activity_level": profile.ActivityLevel,
			"bmi":            profile.BMI,
			"ideal_weight":   profile.IdealWeight,
			"metabolic_rate": profile.MetabolicRate,
			"tdee":           profile.TDEE,
		})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// SearchRanked matches the query against the precomputed search_field.
// On PostgreSQL this is a ranked full-text match; elsewhere (the in-memory
// test database) it degrades to a substring match on the same column.
func (r *userRepository) SearchRanked(ctx context.Context, query string, excludeID uint, limit int) ([]models.User, error) {
	var users []models.User

	tx := r.db.WithContext(ctx).Model(&models.User{}).Where("id <> ?", excludeID)
	if r.db.Dialector.Name() == "postgres" {
		tx = tx.
			Select("*, ts_rank(to_tsvector('simple', search_field), plainto_tsquery('simple', ?)) AS rank", query).
			Where("to_tsvector('simple', search_field) @@ plainto_tsquery('simple', ?)", query).
			Order("rank DESC")
	} else {
		tx = tx.Where("search_field LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	if err := tx.Limit(limit).Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// SearchByName is the case-insensitive substring fallback on full name.
func (r *userRepository) SearchByName(ctx context.Context, query string, excludeID uint, limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
