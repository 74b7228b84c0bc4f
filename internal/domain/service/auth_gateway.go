package service

import (
	"context"
)

// AuthGateway defines the credential check against the remote store API.
// The API validates username and password and returns an opaque token; it
// holds no profile data, so the caller builds the local user itself.
type AuthGateway interface {
	// Login exchanges credentials for a token. Any upstream rejection,
	// regardless of status code, surfaces as a credential failure.
	Login(ctx context.Context, username, password string) (token string, err error)
}
