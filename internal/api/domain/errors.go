package domain

import "errors"

var (
	// ErrEmailTaken is returned when signup hits the unique email index
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when no user exists for an email
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot tell which one failed
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrJobNotFound is returned when an update or delete targets a missing id
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidStatus is returned when a status is outside the five-value enum
	ErrInvalidStatus = errors.New("invalid application status")
)
