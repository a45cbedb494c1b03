package client

import (
	"context"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
)

// API is the typed backend contract the services depend on. HTTPClient
// implements it.
type API interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
	Logout(ctx context.Context) error

	Me(ctx context.Context) (*models.UserProfile, error)
	UpdateMe(ctx context.Context, patch models.ProfileUpdate) (*models.UserProfile, error)
	CompleteOnboarding(ctx context.Context, payload models.OnboardingPayload) error
	DisableAccount(ctx context.Context) error

	ListJournals(ctx context.Context, q models.JournalQuery) ([]models.JournalEntry, error)
	GetJournal(ctx context.Context, id int64) (*models.JournalEntry, error)
	CreateJournal(ctx context.Context, in models.JournalCreate) (*models.JournalEntry, error)
	UpdateJournal(ctx context.Context, id int64, in models.JournalUpdate) (*models.JournalEntry, error)
	DeleteJournal(ctx context.Context, id int64) error
	MoodDistribution(ctx context.Context, days int) (*models.MoodDistribution, error)

	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	RoadmapContents(ctx context.Context, roadmapID int64) ([]models.RoadmapContentItem, error)
	ListEnrollments(ctx context.Context) ([]models.Enrollment, error)
	Enroll(ctx context.Context, req models.EnrollRequest) (*models.Enrollment, error)
}

var _ API = (*HTTPClient)(nil)
