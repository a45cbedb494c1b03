package state

import "github.com/dmitrijs2005/nuroki/internal/client/models"

// App is the application state shared by the services of one process.
type App struct {
	Profile    *ProfileStore
	Onboarding *OnboardingDraft
	Journals   *ListCache[models.JournalEntry]
	Courses    *ListCache[models.Course]
}

func NewApp() *App {
	return &App{
		Profile:    NewProfileStore(),
		Onboarding: NewOnboardingDraft(),
		Journals:   NewListCache[models.JournalEntry](),
		Courses:    NewListCache[models.Course](),
	}
}

// Reset drops all user-specific state. Called on logout.
func (a *App) Reset() {
	a.Profile.ClearProfile()
	a.Onboarding.Reset()
	a.Journals.Invalidate()
	a.Courses.Invalidate()
}
