package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"resume-builder-backend/pkg/apperror"
)

const bcryptCost = 12

// dummyHash is compared against when the account lookup misses, so login
// timing does not reveal whether an email exists.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyDummy burns a bcrypt comparison against a fixed hash. Always false.
func VerifyDummy(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the signup password policy:
// minimum 8 characters with at least one uppercase letter, one lowercase
// letter, one digit and one symbol.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return apperror.BadRequest("Password must contain uppercase, lowercase, number and special character")
	}
	return nil
}
