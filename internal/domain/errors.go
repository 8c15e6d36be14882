package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials indicates the backend rejected a login. Any
	// other login failure is an outage, not a credential problem.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
