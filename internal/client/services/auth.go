// Package services contains the application services of the nuroki client.
// They orchestrate the REST client and the in-process state: a successful
// login loads the profile, logout forgets everything, journal writes
// invalidate the journal cache, and so on.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nuroki/internal/client/client"
	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/client/state"
	"github.com/dmitrijs2005/nuroki/internal/client/tokens"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate, persist the token pair, load the profile.
//   - Register: create a new account; does not sign in.
//   - Logout: best-effort server logout, then clear tokens and state.
//   - Status: describe the current session.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.UserProfile, error)
	Register(ctx context.Context, email, password, fullName string) (*models.RegisterResponse, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) Status
}

// SessionState reports the authentication state; *client.Session
// implements it.
type SessionState interface {
	State() client.State
}

// Status is a snapshot of the current session.
type Status struct {
	State    client.State
	LoggedIn bool
	// Claims is nil when the access token is not a decodable JWT.
	Claims  *tokens.Claims
	Profile *models.UserProfile
}

type authService struct {
	api     client.API
	tokens  *tokens.Store
	session SessionState
	app     *state.App
}

func NewAuthService(api client.API, store *tokens.Store, session SessionState, app *state.App) AuthService {
	return &authService{api: api, tokens: store, session: session, app: app}
}

// Login signs in and then fetches the profile into state. When the profile
// fetch fails the session stays signed in and the error is returned.
func (a *authService) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	resp, err := a.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	a.app.Reset()

	p, err := a.api.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p.Email == "" {
		p.Email = resp.Email
	}
	a.app.Profile.SetProfile(p)
	return a.app.Profile.Profile(), nil
}

func (a *authService) Register(ctx context.Context, email, password, fullName string) (*models.RegisterResponse, error) {
	resp, err := a.api.Register(ctx, models.RegisterRequest{Email: email, Password: password, FullName: fullName})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return resp, nil
}

// Logout always clears local state. The server error, if any, is returned
// for reporting only.
func (a *authService) Logout(ctx context.Context) error {
	err := a.api.Logout(ctx)
	a.app.Reset()
	if err != nil {
		return fmt.Errorf("server logout: %w", err)
	}
	return nil
}

func (a *authService) Status(ctx context.Context) Status {
	st := Status{State: a.session.State(), Profile: a.app.Profile.Profile()}

	access, ok := a.tokens.AccessToken(ctx)
	if !ok {
		return st
	}
	st.LoggedIn = true
	if c, err := tokens.Inspect(access); err == nil {
		st.Claims = &c
	}
	return st
}
