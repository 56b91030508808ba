package service

import (
	"context"

	"fitlink/internal/health"
	"fitlink/internal/models"
	"fitlink/internal/repository"
)

// HealthService wraps the pure metric calculator with persistence: a
// calculation for an authenticated user overwrites the health profile on
// the user record (last write wins).
type HealthService struct {
	userRepo repository.UserRepository
}

// NewHealthService returns a new HealthService.
func NewHealthService(userRepo repository.UserRepository) *HealthService {
	return &HealthService{userRepo: userRepo}
}

// MetricsResult is the API projection of a calculation, rounded to two
// decimal places for display.
type MetricsResult struct {
	BMI           float64 `json:"bmi"`
	IdealWeight   float64 `json:"ideal_weight"`
	MetabolicRate float64 `json:"metabolic_rate"`
	TDEE          float64 `json:"tdee"`
}

// CalculateAndStore validates the input, derives the four metrics and
// persists inputs plus derived values onto the user record at full
// precision. The returned result is rounded for display.
func (s *HealthService) CalculateAndStore(ctx context.Context, userID uint, in health.Input) (*MetricsResult, error) {
	metrics, err := health.Calculate(in)
	if err != nil {
		return nil, err
	}

	profile := repository.HealthProfile{
		Height:        in.Height,
		Weight:        in.Weight,
		Age:           in.Age,
		Gender:        in.Gender,
		ActivityLevel: in.ActivityLevel,
		BMI:           metrics.BMI,
		IdealWeight:   metrics.IdealWeight,
		MetabolicRate: metrics.MetabolicRate,
		TDEE:          metrics.TDEE,
	}
	if err := s.userRepo.UpdateHealthProfile(ctx, userID, profile); err != nil {
		return nil, err
	}

	return &MetricsResult{
		BMI:           health.Round2(metrics.BMI),
		IdealWeight:   health.Round2(metrics.IdealWeight),
		MetabolicRate: health.Round2(metrics.MetabolicRate),
		TDEE:          health.Round2(metrics.TDEE),
	}, nil
}

// StoredMetrics is the stored health profile of a user as returned by the
// metrics endpoint.
type StoredMetrics struct {
	Height        float64              `json:"height"`
	Weight        float64              `json:"weight"`
	Age           int                  `json:"age"`
	Gender        models.Gender        `json:"gender"`
	ActivityLevel models.ActivityLevel `json:"activity_level"`
	BMI           float64              `json:"bmi"`
	IdealWeight   float64              `json:"ideal_weight"`
	MetabolicRate float64              `json:"metabolic_rate"`
	TDEE          float64              `json:"tdee"`
}

// GetMetrics returns the user's stored health profile.
func (s *HealthService) GetMetrics(ctx context.Context, userID uint) (*StoredMetrics, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &StoredMetrics{
		Height:        user.Height,
		Weight:        user.Weight,
		Age:           user.Age,
		Gender:        user.Gender,
		ActivityLevel: user.ActivityLevel,
		BMI:           user.BMI,
		IdealWeight:   user.IdealWeight,
		MetabolicRate: user.MetabolicRate,
		TDEE:          user.TDEE,
	}, nil
}

// BuildReport renders the user's stored health profile into an Excel
// workbook. The only error path besides store failures is "user not found".
func (s *HealthService) BuildReport(ctx context.Context, userID uint) ([]byte, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	report, err := health.BuildReport(user)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return report, nil
}
