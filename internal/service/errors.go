package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmailTaken is the registration conflict reason: another account
	// already uses the requested e-mail address.
	ErrEmailTaken = errors.New("user already exists")

	// ErrUserNotFound is the login reason for a nonexistent account.
	// ErrWrongPassword is the login reason for a bad credential.
	// The two stay distinguishable at this layer; handlers unify them
	// into one authentication failure so callers cannot probe accounts.
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotResourceOwner is the ownership policy denial reason.
	ErrNotResourceOwner = errors.New("caller does not own the resource")

	// ErrAuthorNotFound is returned by post creation when the referenced
	// author does not resolve to an existing user.
	ErrAuthorNotFound = errors.New("author not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenNotStructured is returned when a verifiable token does not
	// carry the structured identity claim this service issues.
	ErrTokenNotStructured = errors.New("token does not carry a structured claim")
)
