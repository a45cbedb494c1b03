package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nuroki/internal/client/client"
	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/client/state"
)

// ProfileService reads and edits the signed-in user's profile.
type ProfileService interface {
	// Load fetches the profile and replaces the one held in state.
	Load(ctx context.Context) (*models.UserProfile, error)
	// Current returns the profile held in state, loading it on first use.
	Current(ctx context.Context) (*models.UserProfile, error)
	Update(ctx context.Context, patch models.ProfileUpdate) (*models.UserProfile, error)
	// Disable deactivates the account and forgets the session.
	Disable(ctx context.Context) error
}

type profileService struct {
	api client.API
	app *state.App
}

func NewProfileService(api client.API, app *state.App) ProfileService {
	return &profileService{api: api, app: app}
}

func (s *profileService) Load(ctx context.Context) (*models.UserProfile, error) {
	p, err := s.api.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	s.app.Profile.SetProfile(p)
	return s.app.Profile.Profile(), nil
}

func (s *profileService) Current(ctx context.Context) (*models.UserProfile, error) {
	if p := s.app.Profile.Profile(); p != nil {
		return p, nil
	}
	return s.Load(ctx)
}

// Update sends the patch and stores the profile the backend returns. An
// empty patch sends nothing.
func (s *profileService) Update(ctx context.Context, patch models.ProfileUpdate) (*models.UserProfile, error) {
	if patch.Empty() {
		return s.Current(ctx)
	}
	p, err := s.api.UpdateMe(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.app.Profile.SetProfile(p)
	return s.app.Profile.Profile(), nil
}

func (s *profileService) Disable(ctx context.Context) error {
	if err := s.api.DisableAccount(ctx); err != nil {
		return fmt.Errorf("disable account: %w", err)
	}
	s.app.Reset()
	return nil
}
