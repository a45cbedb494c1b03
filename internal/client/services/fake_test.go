package services

import (
	"context"

	"github.com/dmitrijs2005/nuroki/internal/client/client"
	"github.com/dmitrijs2005/nuroki/internal/client/models"
)

// fakeAPI implements client.API for unit tests of the services.
type fakeAPI struct {
	LoginResp *models.LoginResponse
	LoginErr  error
	LastLogin models.LoginRequest

	RegisterResp *models.RegisterResponse
	RegisterErr  error
	LastRegister models.RegisterRequest

	LogoutErr   error
	LogoutCalls int

	MeResp  *models.UserProfile
	MeErr   error
	MeCalls int

	UpdateResp *models.UserProfile
	UpdateErr  error
	LastUpdate *models.ProfileUpdate

	OnboardingErr  error
	LastOnboarding *models.OnboardingPayload

	DisableErr error

	Journals      []models.JournalEntry
	JournalsErr   error
	JournalsCalls int
	LastQuery     models.JournalQuery

	Journal    *models.JournalEntry
	JournalErr error
	DeleteErr  error
	LastCreate *models.JournalCreate

	Moods *models.MoodDistribution

	Courses      []models.Course
	CoursesCalls int
	Roadmap      []models.RoadmapContentItem
	RoadmapErr   error
	RoadmapID    int64
	Enrollments  []models.Enrollment
	LastEnroll   *models.EnrollRequest
}

var _ client.API = (*fakeAPI)(nil)

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.LastLogin = req
	return f.LoginResp, f.LoginErr
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	f.LastRegister = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeAPI) Logout(context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeAPI) Me(context.Context) (*models.UserProfile, error) {
	f.MeCalls++
	if f.MeErr != nil {
		return nil, f.MeErr
	}
	if f.MeResp == nil {
		return &models.UserProfile{}, nil
	}
	p := f.MeResp.Clone()
	return &p, nil
}

func (f *fakeAPI) UpdateMe(_ context.Context, patch models.ProfileUpdate) (*models.UserProfile, error) {
	f.LastUpdate = &patch
	return f.UpdateResp, f.UpdateErr
}

func (f *fakeAPI) CompleteOnboarding(_ context.Context, payload models.OnboardingPayload) error {
	f.LastOnboarding = &payload
	return f.OnboardingErr
}

func (f *fakeAPI) DisableAccount(context.Context) error { return f.DisableErr }

func (f *fakeAPI) ListJournals(_ context.Context, q models.JournalQuery) ([]models.JournalEntry, error) {
	f.JournalsCalls++
	f.LastQuery = q
	return f.Journals, f.JournalsErr
}

func (f *fakeAPI) GetJournal(context.Context, int64) (*models.JournalEntry, error) {
	return f.Journal, f.JournalErr
}

func (f *fakeAPI) CreateJournal(_ context.Context, in models.JournalCreate) (*models.JournalEntry, error) {
	f.LastCreate = &in
	return f.Journal, f.JournalErr
}

func (f *fakeAPI) UpdateJournal(context.Context, int64, models.JournalUpdate) (*models.JournalEntry, error) {
	return f.Journal, f.JournalErr
}

func (f *fakeAPI) DeleteJournal(context.Context, int64) error { return f.DeleteErr }

func (f *fakeAPI) MoodDistribution(context.Context, int) (*models.MoodDistribution, error) {
	return f.Moods, nil
}

func (f *fakeAPI) ListCourses(context.Context) ([]models.Course, error) {
	f.CoursesCalls++
	return f.Courses, nil
}

func (f *fakeAPI) GetCourse(_ context.Context, id int64) (*models.Course, error) {
	for _, c := range f.Courses {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeAPI) RoadmapContents(_ context.Context, id int64) ([]models.RoadmapContentItem, error) {
	f.RoadmapID = id
	return f.Roadmap, f.RoadmapErr
}

func (f *fakeAPI) ListEnrollments(context.Context) ([]models.Enrollment, error) {
	return f.Enrollments, nil
}

func (f *fakeAPI) Enroll(_ context.Context, req models.EnrollRequest) (*models.Enrollment, error) {
	f.LastEnroll = &req
	return &models.Enrollment{ID: "9", User: req.User, Course: req.Course}, nil
}
