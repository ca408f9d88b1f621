package service

import "errors"

var (
	// ErrUserNotFound signals a well-formed id with no matching row.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken signals a registration attempt with an already registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrMissingCredentials signals a registration attempt without a usable
	// email or password.
	ErrMissingCredentials = errors.New("missing email or password")
)
