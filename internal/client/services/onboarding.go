package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nuroki/internal/client/client"
	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/client/state"
)

// OnboardingService submits the onboarding draft held in state.
type OnboardingService interface {
	Draft() *state.OnboardingDraft
	// Complete sends the draft. On success the draft is reset and the
	// profile is marked as onboarded with the submitted answers.
	Complete(ctx context.Context) error
}

type onboardingService struct {
	api client.API
	app *state.App
}

func NewOnboardingService(api client.API, app *state.App) OnboardingService {
	return &onboardingService{api: api, app: app}
}

func (s *onboardingService) Draft() *state.OnboardingDraft {
	return s.app.Onboarding
}

func (s *onboardingService) Complete(ctx context.Context) error {
	payload := s.app.Onboarding.Payload()
	if err := s.api.CompleteOnboarding(ctx, payload); err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}

	s.app.Onboarding.Reset()

	level := payload.SkillLevel
	s.app.Profile.UpdateProfile(models.ProfileUpdate{
		Interests:    payload.Interests,
		SkillLevel:   &level,
		LearningGoal: &payload.LearningGoal,
		SupportStyle: &payload.SupportStyle,
	})
	s.app.Profile.SetOnboardingCompleted(true)
	return nil
}
