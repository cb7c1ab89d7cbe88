// Package common defines shared constants and sentinel errors used across
// the Mindful client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Collaborator lookup errors.
	ErrorNotFound = errors.New("not found")

	// Generic remote failures (5xx and transport-level).
	ErrorInternal    = errors.New("internal error")
	ErrorUnavailable = errors.New("service unavailable")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Validation errors reported by the collaborator (4xx).
	ErrorValidation = errors.New("validation error")

	// ErrMissingAPIKey means no Gemini credential is configured. The user
	// should be directed to the settings command (or GEMINI_API_KEY).
	ErrMissingAPIKey = errors.New("missing API key")
)
