package domain

import "errors"

var (
	// ErrNotFound is returned when no record with the given id exists.
	ErrNotFound = errors.New("record not found")
)

// Identity-provider error codes, kept wire-compatible with the codes the
// mobile client already maps to user-facing messages.
const (
	CodeInvalidEmail      = "auth/invalid-email"
	CodeUserDisabled      = "auth/user-disabled"
	CodeUserNotFound      = "auth/user-not-found"
	CodeWrongPassword     = "auth/wrong-password"
	CodeWeakPassword      = "auth/weak-password"
	CodeEmailAlreadyInUse = "auth/email-already-in-use"
)

// AuthError carries the provider error code alongside the raw message.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewAuthError(code, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

// FriendlyAuthMessage maps a provider error code to the fixed set of
// user-facing messages. Unmapped codes fall back to a generic message.
func FriendlyAuthMessage(err error) string {
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		return "An error occurred. Please try again."
	}
	switch authErr.Code {
	case CodeInvalidEmail:
		return "The email address is not valid."
	case CodeUserDisabled:
		return "This account has been disabled."
	case CodeUserNotFound:
		return "No account found with this email."
	case CodeWrongPassword:
		return "Incorrect password. Please try again."
	default:
		return "An error occurred. Please try again."
	}
}
