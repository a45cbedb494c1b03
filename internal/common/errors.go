// Package common defines shared constants and sentinel errors used across
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNoProfile is returned when an operation needs the user id but no
	// profile (or one without an id) has been loaded.
	ErrNoProfile = errors.New("profile not loaded")

	// ErrInvalidToken is returned for access tokens that are not decodable JWTs.
	ErrInvalidToken = errors.New("invalid token")
)
