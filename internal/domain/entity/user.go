package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the locally held account profile. The remote store API issues login
// tokens but no profile data, so every field here originates on this device.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Initials returns the uppercased first letters of the user's names.
func (u *User) Initials() string {
	var b strings.Builder
	for _, name := range []string{u.FirstName, u.LastName} {
		for _, r := range name {
			b.WriteRune(r)

			break
		}
	}

	return strings.ToUpper(b.String())
}

// AuthStatus is the session state machine's position.
type AuthStatus string

const (
	// AuthStatusUnknown exists only before the persisted session has been read.
	AuthStatusUnknown AuthStatus = "unknown"

	AuthStatusUnauthenticated AuthStatus = "unauthenticated"
	AuthStatusAuthenticated   AuthStatus = "authenticated"
)

// AuthState pairs the status with the signed-in user, if any.
type AuthState struct {
	Status AuthStatus `json:"status"`
	User   *User      `json:"user,omitempty"` // Set only when Status is authenticated.
}

// IsAuthenticated reports whether a user is signed in.
func (s AuthState) IsAuthenticated() bool {
	return s.Status == AuthStatusAuthenticated
}

// Session is the persisted identity blob: the local user profile plus the
// token obtained at sign-in.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
