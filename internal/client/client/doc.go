// Package client is the REST client of the learning-journey backend.
//
// # Overview
//
// HTTPClient wraps net/http with the session rules of the product:
//  1. The stored access token is sent as "Authorization: Bearer <token>".
//     JSON is the default content type; caller headers (WithHeader) win on
//     conflict, except for Authorization.
//  2. A 401 runs the refresh flow (POST /auth/refresh). On success the new
//     pair is stored and the original request is retried exactly once; on
//     failure the tokens are cleared and a *SessionExpiredError is returned.
//  3. Any other non-2xx response becomes an *HTTPError carrying the body.
//
// API lists the typed endpoints built on top of Do (auth, profile,
// onboarding, journals, courses, roadmaps, enrollments).
//
// # Session state
//
// Every client owns a Session, a small state machine with the states
// Unauthenticated, Authenticating, Authenticated and Refreshing. Illegal
// transitions fail with ErrInvalidTransition.
//
// # Concurrency
//
// With Options.CoalesceRefresh set, concurrent requests that hit 401 with the
// same refresh token share one refresh call. Each request is still retried at
// most once.
//
// # Errors
//
// Match with errors.Is against ErrNetwork, ErrSessionExpired,
// ErrUnauthorized, ErrNotFound and ErrUnavailable, or use errors.As for
// *NetworkError, *HTTPError and *SessionExpiredError. Client-side validation
// failures are *validation.ValidationError.
package client
