package password

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// MinCost and MaxCost bound any configured cost
	MinCost = 10
	MaxCost = 14

	// MinLength is the minimum accepted password length
	MinLength = 8
)

// ClampCost keeps a configured bcrypt cost inside [MinCost, MaxCost]
func ClampCost(cost int) int {
	if cost < MinCost {
		return MinCost
	}
	if cost > MaxCost {
		return MaxCost
	}
	return cost
}

// Hash hashes a password using bcrypt
func Hash(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), ClampCost(cost))
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if password meets requirements
func ValidatePassword(password string) bool {
	return len(password) >= MinLength
}
