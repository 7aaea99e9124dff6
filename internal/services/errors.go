package services

import "errors"

// Sentinel errors returned at the service boundary. Handlers branch on these
// with errors.Is; raw store errors never reach a client.
var (
	// ErrNotFound reports an unknown id on a read, update or delete.
	ErrNotFound = errors.New("not found")

	// ErrWordExists reports a duplicate dictionary word on create.
	ErrWordExists = errors.New("word already exists")

	// ErrEmailExists reports a duplicate user email on create.
	ErrEmailExists = errors.New("email already exists")

	// ErrProtectedRole reports an attempt to delete a superadmin account.
	ErrProtectedRole = errors.New("cannot delete a superadmin user")

	// ErrInvalidCredentials reports a failed login. The same error covers an
	// unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
