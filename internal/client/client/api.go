package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/validation"
)

// Login authenticates with email and password, stores the issued token pair
// and moves the session to Authenticated.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := c.session.Transition(ctx, Authenticating); err != nil {
		return nil, err
	}

	var resp models.LoginResponse
	err := c.Do(ctx, http.MethodPost, "/auth/login", req, &resp, Anonymous())
	if err == nil && resp.AccessToken == "" {
		err = errors.New("login response carries no access token")
	}
	if err == nil {
		err = c.tokens.SaveTokens(ctx, resp.AccessToken, resp.RefreshToken)
	}
	if err != nil {
		c.abortLogin(ctx)
		return nil, err
	}

	if err := c.session.Transition(ctx, Authenticated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// abortLogin restores the session after a failed login. A pair stored by an
// earlier login is still usable, so the session stays Authenticated.
func (c *HTTPClient) abortLogin(ctx context.Context) {
	if _, ok := c.tokens.AccessToken(ctx); ok {
		_ = c.session.Transition(ctx, Authenticated)
		return
	}
	_ = c.session.Transition(ctx, Unauthenticated)
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var resp models.RegisterResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/register", req, &resp, Anonymous()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the backend and then forgets the session. Tokens are
// cleared even when the backend call fails; that error is still returned.
func (c *HTTPClient) Logout(ctx context.Context) error {
	var callErr error
	if _, ok := c.tokens.AccessToken(ctx); ok {
		callErr = c.Do(ctx, http.MethodPost, "/user/logout", nil, nil)
	}
	if err := c.tokens.ClearTokens(ctx); err != nil {
		return err
	}
	_ = c.session.Transition(ctx, Unauthenticated)
	return callErr
}

func (c *HTTPClient) Me(ctx context.Context) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := c.Do(ctx, http.MethodGet, "/user/me", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateMe(ctx context.Context, patch models.ProfileUpdate) (*models.UserProfile, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}
	var p models.UserProfile
	if err := c.Do(ctx, http.MethodPut, "/user/me", patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CompleteOnboarding(ctx context.Context, payload models.OnboardingPayload) error {
	if err := validation.Struct(payload); err != nil {
		return err
	}
	return c.Do(ctx, http.MethodPost, "/user/complete-onboarding", payload, nil)
}

// DisableAccount deactivates the account. The session is over afterwards.
func (c *HTTPClient) DisableAccount(ctx context.Context) error {
	if err := c.Do(ctx, http.MethodDelete, "/user/disable-me", nil, nil); err != nil {
		return err
	}
	if err := c.tokens.ClearTokens(ctx); err != nil {
		return err
	}
	return c.session.Transition(ctx, Unauthenticated)
}

func (c *HTTPClient) ListJournals(ctx context.Context, q models.JournalQuery) ([]models.JournalEntry, error) {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	v.Set("include_onboarding", strconv.FormatBool(q.IncludeOnboarding))

	return Request[[]models.JournalEntry](ctx, c, http.MethodGet, "/journal", nil, WithQuery(v))
}

func (c *HTTPClient) GetJournal(ctx context.Context, id int64) (*models.JournalEntry, error) {
	e, err := Request[models.JournalEntry](ctx, c, http.MethodGet, journalPath(id), nil)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateJournal validates the entry before anything is sent; content longer
// than 150 characters is rejected.
func (c *HTTPClient) CreateJournal(ctx context.Context, in models.JournalCreate) (*models.JournalEntry, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	e, err := Request[models.JournalEntry](ctx, c, http.MethodPost, "/journal", in)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) UpdateJournal(ctx context.Context, id int64, in models.JournalUpdate) (*models.JournalEntry, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	e, err := Request[models.JournalEntry](ctx, c, http.MethodPut, journalPath(id), in)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) DeleteJournal(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, journalPath(id), nil, nil)
}

func (c *HTTPClient) MoodDistribution(ctx context.Context, days int) (*models.MoodDistribution, error) {
	v := url.Values{}
	if days > 0 {
		v.Set("days", strconv.Itoa(days))
	}
	var env struct {
		Success bool                    `json:"success"`
		Data    models.MoodDistribution `json:"data"`
	}
	if err := c.Do(ctx, http.MethodGet, "/journal/analytics/mood-distribution", nil, &env, WithQuery(v)); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *HTTPClient) ListCourses(ctx context.Context) ([]models.Course, error) {
	return list[models.Course](ctx, c, c.courses("/courses"))
}

func (c *HTTPClient) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := Request[models.Course](ctx, c, http.MethodGet, c.courses("/courses/"+strconv.FormatInt(id, 10)), nil)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *HTTPClient) RoadmapContents(ctx context.Context, roadmapID int64) ([]models.RoadmapContentItem, error) {
	return list[models.RoadmapContentItem](ctx, c, c.courses("/roadmaps/"+strconv.FormatInt(roadmapID, 10)+"/contents"))
}

func (c *HTTPClient) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	return list[models.Enrollment](ctx, c, c.courses("/enrollments"))
}

func (c *HTTPClient) Enroll(ctx context.Context, req models.EnrollRequest) (*models.Enrollment, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	e, err := Request[models.Enrollment](ctx, c, http.MethodPost, c.courses("/enrollments"), req)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func list[T any](ctx context.Context, c *HTTPClient, endpoint string) ([]T, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, endpoint, nil, &raw); err != nil {
		return nil, err
	}
	items, err := models.DecodeList[T](raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return items, nil
}

func journalPath(id int64) string {
	return "/journal/" + strconv.FormatInt(id, 10)
}
