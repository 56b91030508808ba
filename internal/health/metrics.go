// Package health implements the health metric calculations: BMI, ideal
// weight (Hamwi), basal metabolic rate (Mifflin-St Jeor) and total daily
// energy expenditure. All functions are pure; persistence is the caller's
// concern.
package health

import (
	"math"

	"fitlink/internal/models"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityHeavy:     1.725,
	models.ActivityAthlete:   1.9,
}

// Input holds the five health attributes the calculator operates on.
type Input struct {
	Height        float64              // cm
	Weight        float64              // kg
	Age           int                  // years
	Gender        models.Gender        //
	ActivityLevel models.ActivityLevel //
}

// Metrics holds the derived values at full precision. Round to two decimals
// for display with Round2.
type Metrics struct {
	BMI           float64
	IdealWeight   float64
	MetabolicRate float64
	TDEE          float64
}

// Validate checks the input for presence and positivity.
func (in Input) Validate() error {
	if in.Height <= 0 {
		return models.NewValidationError("height must be a positive number of centimeters")
	}
	if in.Weight <= 0 {
		return models.NewValidationError("weight must be a positive number of kilograms")
	}
	if in.Age <= 0 {
		return models.NewValidationError("age must be a positive number of years")
	}
	if !models.ValidGender(in.Gender) {
		return models.NewValidationError("gender must be one of male, female or other")
	}
	if !models.ValidActivityLevel(in.ActivityLevel) {
		return models.NewValidationError("activity level must be one of sedentary, light, moderate, heavy or athlete")
	}
	return nil
}

// Calculate derives all four metrics from the input.
func Calculate(in Input) (Metrics, error) {
	if err := in.Validate(); err != nil {
		return Metrics{}, err
	}

	heightM := in.Height / 100
	bmi := in.Weight / (heightM * heightM)

	// Hamwi ideal weight. The base constant is gender-branched; "other"
	// averages the male and female constants over the same height offset.
	heightOffset := (in.Height - 152) / 2.54
	var idealWeight float64
	switch in.Gender {
	case models.GenderMale:
		idealWeight = 48 + 2.7*heightOffset
	case models.GenderFemale:
		idealWeight = 45.5 + 2.2*heightOffset
	default:
		idealWeight = (48+45.5)/2 + 2.45*heightOffset
	}

	// Mifflin-St Jeor. "other" intentionally uses the female constant,
	// unlike the ideal-weight branch above.
	bmr := 10*in.Weight + 6.25*in.Height - 5*float64(in.Age)
	if in.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityMultipliers[in.ActivityLevel]

	return Metrics{
		BMI:           bmi,
		IdealWeight:   idealWeight,
		MetabolicRate: bmr,
		TDEE:          tdee,
	}, nil
}

// Round2 rounds v to two decimal places for display. Stored values keep
// full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalorieTargets derives the three daily calorie targets from TDEE:
// maintenance, a 15% cut and a 15% bulk.
func CalorieTargets(tdee float64) (maintenance, cut, bulk int) {
	maintenance = int(math.Round(tdee))
	cut = int(math.Round(float64(maintenance) * 0.85))
	bulk = int(math.Round(float64(maintenance) * 1.15))
	return maintenance, cut, bulk
}
