package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "alice@allowed.edu", NormalizeEmail("  Alice@Allowed.EDU "))
	require.Equal(t, "bob@allowed.edu", NormalizeEmail("bob@allowed.edu"))
}

func TestEmailDomainAllowed(t *testing.T) {
	t.Parallel()

	require.True(t, EmailDomainAllowed("alice@allowed.edu", "allowed.edu"))
	require.False(t, EmailDomainAllowed("alice@gmail.com", "allowed.edu"))
	// The suffix must cover the whole domain part.
	require.False(t, EmailDomainAllowed("alice@notallowed.edu", "allowed.edu"))
	require.False(t, EmailDomainAllowed("allowed.edu", "allowed.edu"))
}

func TestValidateNewPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		ok       bool
	}{
		{"Passw0rd", true},
		{"12345678", true},
		{"longenoughbutnodigit", false},
		{"sh0rt", false},
		{"", false},
	}
	for _, tt := range tests {
		err := ValidateNewPassword(tt.password)
		if tt.ok {
			require.NoError(t, err, tt.password)
		} else {
			require.Error(t, err, tt.password)
			require.IsType(t, &ValidationError{}, err)
		}
	}
}
