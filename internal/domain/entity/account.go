package entity

// LocalAccount is an account created on this device through sign-up.
// The remote store knows nothing about it; the password hash lets the
// account sign back in without a round trip.
type LocalAccount struct {
	User         User   `json:"user"`
	PasswordHash string `json:"passwordHash"`
}
