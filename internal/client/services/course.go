package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/nuroki/internal/client/client"
	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/client/state"
	"github.com/dmitrijs2005/nuroki/internal/common"
)

// CourseService browses courses and manages the user's enrollments.
type CourseService interface {
	Courses(ctx context.Context, refresh bool) ([]models.Course, error)
	Course(ctx context.Context, id int64) (*models.Course, error)
	Roadmap(ctx context.Context, roadmapID int64) ([]models.RoadmapContentItem, error)
	// MyEnrollments lists the enrollments of the signed-in user.
	MyEnrollments(ctx context.Context) ([]models.Enrollment, error)
	Enroll(ctx context.Context, courseID int64) (*models.Enrollment, error)
}

type courseService struct {
	api     client.API
	app     *state.App
	profile ProfileService
}

func NewCourseService(api client.API, app *state.App, profile ProfileService) CourseService {
	return &courseService{api: api, app: app, profile: profile}
}

func (s *courseService) Courses(ctx context.Context, refresh bool) ([]models.Course, error) {
	if !refresh {
		if items, ok := s.app.Courses.Get(); ok {
			return items, nil
		}
	}
	items, err := s.api.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	s.app.Courses.Set(items)
	return items, nil
}

// Course fetches one course together with its levels. A course without a
// roadmap has no levels.
func (s *courseService) Course(ctx context.Context, id int64) (*models.Course, error) {
	c, err := s.api.GetCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course %d: %w", id, err)
	}
	if len(c.Levels) > 0 {
		return c, nil
	}
	levels, err := s.api.RoadmapContents(ctx, id)
	if err != nil && !errors.Is(err, client.ErrNotFound) {
		return nil, fmt.Errorf("roadmap %d: %w", id, err)
	}
	c.Levels = levels
	return c, nil
}

// Roadmap returns the roadmap levels ordered as the backend sends them.
func (s *courseService) Roadmap(ctx context.Context, roadmapID int64) ([]models.RoadmapContentItem, error) {
	items, err := s.api.RoadmapContents(ctx, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("roadmap %d: %w", roadmapID, err)
	}
	return items, nil
}

func (s *courseService) MyEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.api.ListEnrollments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	mine := make([]models.Enrollment, 0, len(all))
	for _, e := range all {
		if string(e.User) == uid {
			mine = append(mine, e)
		}
	}
	return mine, nil
}

func (s *courseService) Enroll(ctx context.Context, courseID int64) (*models.Enrollment, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.api.Enroll(ctx, models.EnrollRequest{
		User:   models.FlexID(uid),
		Course: models.FlexID(strconv.FormatInt(courseID, 10)),
	})
	if err != nil {
		return nil, fmt.Errorf("enroll in course %d: %w", courseID, err)
	}
	return e, nil
}

func (s *courseService) userID(ctx context.Context) (string, error) {
	p, err := s.profile.Current(ctx)
	if err != nil {
		return "", err
	}
	if p.UserID == "" {
		return "", common.ErrNoProfile
	}
	return p.UserID, nil
}
