// Package models defines the wire and state types shared by the nuroki
// client: tokens, user profile, onboarding, journals, courses.
package models

import "encoding/json"

// TokenPair is the access/refresh token pair issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UnmarshalJSON accepts the access token under either "accessToken" or
// "idToken"; the auth backend proxies Firebase and uses the latter.
func (p *TokenPair) UnmarshalJSON(b []byte) error {
	var raw struct {
		AccessToken  string `json:"accessToken"`
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.AccessToken = raw.AccessToken
	if p.AccessToken == "" {
		p.AccessToken = raw.IDToken
	}
	p.RefreshToken = raw.RefreshToken
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the token pair plus the account metadata the login
// endpoint returns alongside it.
type LoginResponse struct {
	TokenPair
	LocalID            string `json:"localId,omitempty"`
	Email              string `json:"email,omitempty"`
	ExpiresIn          string `json:"expiresIn,omitempty"`
	AccountReactivated bool   `json:"account_reactivated,omitempty"`
}

func (r *LoginResponse) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &r.TokenPair); err != nil {
		return err
	}
	var rest struct {
		LocalID            string `json:"localId"`
		Email              string `json:"email"`
		ExpiresIn          string `json:"expiresIn"`
		AccountReactivated bool   `json:"account_reactivated"`
	}
	if err := json.Unmarshal(b, &rest); err != nil {
		return err
	}
	r.LocalID = rest.LocalID
	r.Email = rest.Email
	r.ExpiresIn = rest.ExpiresIn
	r.AccountReactivated = rest.AccountReactivated
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

type RegisterResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
