package state

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
)

// OnboardingDraft collects the answers of one onboarding run. Interests have
// set semantics and keep insertion order.
type OnboardingDraft struct {
	mu           sync.Mutex
	interests    []string
	skillLevel   models.SkillLevel
	learningGoal string
	supportStyle string
}

func NewOnboardingDraft() *OnboardingDraft {
	return &OnboardingDraft{}
}

// AddInterest adds v unless it is already present.
func (d *OnboardingDraft) AddInterest(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !slices.Contains(d.interests, v) {
		d.interests = append(d.interests, v)
	}
}

// RemoveInterest removes v if present.
func (d *OnboardingDraft) RemoveInterest(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interests = slices.DeleteFunc(d.interests, func(s string) bool { return s == v })
}

// SetInterests replaces the interests, dropping duplicates.
func (d *OnboardingDraft) SetInterests(vs []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interests = d.interests[:0:0]
	for _, v := range vs {
		if !slices.Contains(d.interests, v) {
			d.interests = append(d.interests, v)
		}
	}
}

func (d *OnboardingDraft) Interests() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.interests)
}

func (d *OnboardingDraft) HasInterest(v string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Contains(d.interests, v)
}

func (d *OnboardingDraft) SetSkillLevel(v models.SkillLevel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.skillLevel = v
}

func (d *OnboardingDraft) SetLearningGoal(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.learningGoal = v
}

func (d *OnboardingDraft) SetSupportStyle(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.supportStyle = v
}

// Reset clears every answer.
func (d *OnboardingDraft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interests = nil
	d.skillLevel = ""
	d.learningGoal = ""
	d.supportStyle = ""
}

// Payload builds the complete-onboarding request body from the draft.
func (d *OnboardingDraft) Payload() models.OnboardingPayload {
	d.mu.Lock()
	defer d.mu.Unlock()
	return models.OnboardingPayload{
		Interests:    slices.Clone(d.interests),
		SkillLevel:   d.skillLevel,
		LearningGoal: d.learningGoal,
		SupportStyle: d.supportStyle,
	}
}
