package utils

import (
	"regexp"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Password validation regex patterns
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// ValidateRating checks that a submitted rating lies in the allowed range
func ValidateRating(rating float64) (bool, string) {
	if rating < 0 || rating > 5 {
		return false, "Rating must be between 0 and 5"
	}
	return true, ""
}

// ValidateExpiry accepts the "No expiration" sentinel or an ISO date string
func ValidateExpiry(expiry string) (bool, string) {
	if expiry == "" || expiry == ExpiryNone {
		return true, ""
	}
	if _, err := time.Parse("2006-01-02", expiry); err != nil {
		return false, "Expiry must be an ISO date (YYYY-MM-DD) or \"No expiration\""
	}
	return true, ""
}

// ValidProvider reports whether the action provider is a known value
func ValidProvider(provider string, valid []string) bool {
	for _, v := range valid {
		if provider == v {
			return true
		}
	}
	return false
}
