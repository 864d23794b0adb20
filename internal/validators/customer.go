package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	PhoneMinLength = 10
	PhoneMaxLength = 15
)

var validate = validator.New()

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmail(email string) bool {
	return email != "" && validate.Var(email, "email") == nil
}

// IsPhoneNumber checks length only; the salon stores numbers as typed.
func IsPhoneNumber(phone string) bool {
	n := len(strings.TrimSpace(phone))
	return n >= PhoneMinLength && n <= PhoneMaxLength
}
