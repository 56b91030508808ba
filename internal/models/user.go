package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Gender is the self-reported gender used by the metric formulas.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ValidGender reports whether g is a recognized gender value.
func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ActivityLevel describes habitual exercise load for TDEE scaling.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHeavy     ActivityLevel = "heavy"
	ActivityAthlete   ActivityLevel = "athlete"
)

// ValidActivityLevel reports whether a is a recognized activity level.
func ValidActivityLevel(a ActivityLevel) bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityHeavy, ActivityAthlete:
		return true
	}
	return false
}

// User represents a user in the FitLink application.
//
// The health profile columns stay zero until the user runs the metric
// calculation; computed metrics are stored at full precision and rounded
// only for display.
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"unique;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	FirstName   string `gorm:"not null" json:"first_name"`
	LastName    string `gorm:"not null" json:"last_name"`
	FullName    string `json:"full_name"`
	SearchField string `gorm:"index" json:"-"`

	// Health profile
	Height        float64       `json:"height,omitempty"`
	Weight        float64       `json:"weight,omitempty"`
	Age           int           `json:"age,omitempty"`
	Gender        Gender        `gorm:"type:varchar(10)" json:"gender,omitempty"`
	ActivityLevel ActivityLevel `gorm:"type:varchar(20)" json:"activity_level,omitempty"`

	// Computed metrics
	BMI           float64 `json:"bmi,omitempty"`
	IdealWeight   float64 `json:"ideal_weight,omitempty"`
	MetabolicRate float64 `json:"metabolic_rate,omitempty"`
	TDEE          float64 `json:"tdee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// BeforeSave keeps the derived columns in sync with the name and email.
// SearchField backs the full-text search index, so it is always lowercase.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.FullName = u.FirstName + " " + u.LastName
	u.SearchField = strings.ToLower(u.Email + " " + u.FullName)
	return nil
}

// UserSummary is the public projection of a user, safe to return to
// other authenticated users (search results, friend lists).
type UserSummary struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// Summary returns the public projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName,
	}
}
