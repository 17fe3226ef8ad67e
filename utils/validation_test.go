package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com", "x_1@sub.domain.org"}
	for _, email := range valid {
		ok, _ := ValidateEmail(email)
		assert.True(t, ok, email)
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user@host", "user @example.com"}
	for _, email := range invalid {
		ok, _ := ValidateEmail(email)
		assert.False(t, ok, email)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"Passw0rd", true},
		{"short1A", false},
		{"alllower1", false},
		{"ALLUPPER1", false},
		{"NoNumbers", false},
	}
	for _, tt := range tests {
		ok, _ := ValidatePassword(tt.password)
		assert.Equal(t, tt.ok, ok, tt.password)
	}
}

func TestValidateRating(t *testing.T) {
	for _, rating := range []float64{0, 2.5, 5} {
		ok, _ := ValidateRating(rating)
		assert.True(t, ok)
	}
	for _, rating := range []float64{-0.1, 5.1} {
		ok, _ := ValidateRating(rating)
		assert.False(t, ok)
	}
}

func TestValidateExpiry(t *testing.T) {
	for _, expiry := range []string{"", ExpiryNone, "2026-12-31"} {
		ok, _ := ValidateExpiry(expiry)
		assert.True(t, ok, expiry)
	}
	for _, expiry := range []string{"31-12-2026", "2026-13-01", "soon"} {
		ok, _ := ValidateExpiry(expiry)
		assert.False(t, ok, expiry)
	}
}
