package utils

// Error taxonomy for the API boundary. Handlers return these and the
// router maps them onto 400/401/429/403 JSON bodies.

// ValidationError rejects bad registration input (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthenticationError covers bad credentials, invalid/expired tokens and
// rejected federated assertions (401).
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// RateLimitError is returned while a throttle lock is active (429).
type RateLimitError struct {
	Message           string
	RetryAfterMinutes int
}

func (e *RateLimitError) Error() string { return e.Message }

// AuthorizationError means authenticated but not permitted (403).
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }
