package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeEmail trims and lower-cases an email. Every comparison, lookup
// and store of an email goes through this first.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomainAllowed reports whether a normalized email belongs to the
// configured organizational domain.
func EmailDomainAllowed(email, domain string) bool {
	return strings.HasSuffix(email, "@"+domain)
}

// ValidateNewPassword enforces the registration password policy: at least
// 8 characters and at least one digit.
func ValidateNewPassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{Message: WEAK_PASSWORD_ERROR}
	}
	for _, r := range password {
		if unicode.IsDigit(r) {
			return nil
		}
	}
	return &ValidationError{Message: WEAK_PASSWORD_ERROR}
}

func DomainNotAllowedError(domain string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(DOMAIN_NOT_ALLOWED_ERROR, "@"+domain)}
}
