package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
)

var skillLevels = []string{
	string(models.SkillLevelBeginner),
	string(models.SkillLevelIntermediate),
	string(models.SkillLevelAdvanced),
}

// Onboarding walks through the onboarding questions and submits the answers.
func (a *App) Onboarding(ctx context.Context) error {
	draft := a.onboarding.Draft()
	draft.Reset()

	interests, err := GetList(a.reader, "What are you interested in?", a.out)
	if err != nil {
		return err
	}
	for _, i := range interests {
		draft.AddInterest(i)
	}

	level, err := GetChoice(a.reader, "What is your skill level?", skillLevels, a.out)
	if err != nil {
		return err
	}
	draft.SetSkillLevel(models.SkillLevel(level))

	goal, err := getSimpleText(a.reader, "What is your learning goal?", a.out)
	if err != nil {
		return err
	}
	draft.SetLearningGoal(goal)

	style, err := getSimpleText(a.reader, "How would you like to be supported?", a.out)
	if err != nil {
		return err
	}
	draft.SetSupportStyle(style)

	if err := a.onboarding.Complete(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Onboarding complete!")
	return nil
}
