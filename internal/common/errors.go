// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Credential errors.
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("user already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Storage errors. ErrTransient marks failures worth retrying (timeouts,
	// cancelled requests) as opposed to definitive rejections.
	ErrPersistence = errors.New("persistence error")
	ErrTransient   = errors.New("temporarily unavailable")
)
