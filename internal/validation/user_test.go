package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"a+tag@b.co",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"plain",
		"no@tld",
		"spaces in@example.com",
		"@example.com",
		"user@",
		strings.Repeat("a", 250) + "@x.com",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), email)
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("First name", "Grace"))
	assert.NoError(t, ValidateName("Last name", "de la Cruz"))

	assert.Error(t, ValidateName("First name", ""))
	assert.Error(t, ValidateName("First name", "   "))
	assert.Error(t, ValidateName("Last name", strings.Repeat("x", 65)))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Password123"))
	assert.NoError(t, ValidatePassword("aB3"+strings.Repeat("x", 10)))

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1"},
		{"too long", "Ab1" + strings.Repeat("x", 130)},
		{"no uppercase", "password123"},
		{"no lowercase", "PASSWORD123"},
		{"no digit", "PasswordOnly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidatePassword(tt.password))
		})
	}
}
