package usecase

import "errors"

// ErrInvalidCredentials covers every authentication failure: missing input,
// unknown email, wrong password. One error for all of them so responses cannot
// be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports caller input that is missing or malformed;
// the message names the first violated rule.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string { return e.msg }

// ConflictError reports a violated uniqueness invariant;
// the message names the conflicting field when known.
type ConflictError struct {
	msg string
}

func (e ConflictError) Error() string { return e.msg }
