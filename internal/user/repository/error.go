package repository

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned for a duplicate-key failure the storage
	// layer cannot attribute to a specific column.
	ErrAlreadyExists  = errors.New("already exists")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)
