package domain

import (
	"strings"

	"github.com/google/uuid"
)

type UserRole string

const (
	Admin   UserRole = "admin"
	AppUser UserRole = "appuser"
)

// User mirrors the identity-provider record for the signed-in account.
type User struct {
	UID         string   `json:"uid"`
	Email       string   `json:"email"`
	DisplayName string   `json:"displayName"`
	PhotoURL    string   `json:"photoURL"`
	Role        UserRole `json:"role"`
}

// EmailPrefix is the part of the email before the @, shown as a short
// display handle. Falls back to "Guest" when there is no email.
func (u *User) EmailPrefix() string {
	if u == nil || u.Email == "" {
		return "Guest"
	}
	return strings.SplitN(u.Email, "@", 2)[0]
}

type TokenPayload struct {
	ID     uuid.UUID
	UserID string
	Role   UserRole
}

type AuthStatus int

const (
	AuthUnknown AuthStatus = iota
	Authenticated
	Unauthenticated
)

// AuthState is one emission of the session gate. User is set only when
// Status is Authenticated.
type AuthState struct {
	Status AuthStatus
	User   *User
}
