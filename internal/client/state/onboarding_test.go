package state

import (
	"testing"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestAddInterest_Idempotent(t *testing.T) {
	d := NewOnboardingDraft()
	d.AddInterest("go")
	d.AddInterest("go")

	assert.Equal(t, []string{"go"}, d.Interests())
}

func TestRemoveInterest(t *testing.T) {
	d := NewOnboardingDraft()
	d.AddInterest("go")
	d.AddInterest("rust")
	d.AddInterest("sql")

	d.RemoveInterest("rust")
	d.RemoveInterest("absent")

	assert.Equal(t, []string{"go", "sql"}, d.Interests())
	assert.True(t, d.HasInterest("sql"))
	assert.False(t, d.HasInterest("rust"))
}

func TestSetInterests_DropsDuplicates(t *testing.T) {
	d := NewOnboardingDraft()
	d.SetInterests([]string{"a", "b", "a"})
	assert.Equal(t, []string{"a", "b"}, d.Interests())
}

func TestPayloadAndReset(t *testing.T) {
	d := NewOnboardingDraft()
	d.AddInterest("go")
	d.SetSkillLevel(models.SkillLevelBeginner)
	d.SetLearningGoal("ship")
	d.SetSupportStyle("hands-on")

	assert.Equal(t, models.OnboardingPayload{
		Interests:    []string{"go"},
		SkillLevel:   models.SkillLevelBeginner,
		LearningGoal: "ship",
		SupportStyle: "hands-on",
	}, d.Payload())

	d.Reset()
	assert.Equal(t, models.OnboardingPayload{}, d.Payload())
}
