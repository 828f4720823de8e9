package entity

import "time"

// Account is a registered user's credential record.
// PasswordHash is opaque and must never leave the service boundary.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicAccount is the subset of an account safe to return to callers.
type PublicAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the externally visible projection of the account.
func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
	}
}
