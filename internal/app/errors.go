package app

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMessageEmpty      = errors.New("message content is empty")
	ErrMessageTooLong    = errors.New("message is too long, limit your question to 500 characters")
	ErrSessionNotFound   = errors.New("session not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrClinicNotFound    = errors.New("clinic not found")
	ErrSlugConflict      = errors.New("session slug conflict")
	ErrUpstream          = errors.New("upstream service failed")
	ErrUsernameExists    = errors.New("username already exists")
	ErrEmailExists       = errors.New("email already exists")
	ErrInvalidCredential = errors.New("invalid username or password")
)

// upstreamErr tags a collaborator failure so handlers can map it to 502
// while the original cause stays in the text for server-side logs.
func upstreamErr(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
