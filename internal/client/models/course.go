package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexID is an identifier the backend sends either as a JSON number or as a
// string. It is kept in its string form.
type FlexID string

func (id *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("flex id: %w", err)
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(id))
}

type Tag struct {
	TagID int64  `json:"tag_id"`
	Name  string `json:"name"`
}

type Course struct {
	ID          int64   `json:"course_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CourseURL   string  `json:"course_url"`
	Difficulty  string  `json:"difficulty"`
	Rating      float64 `json:"rating"`
	Progress    float64 `json:"progress"`
	Tags        []Tag   `json:"tags"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	// Levels is the course roadmap. The courses API does not embed it; it is
	// loaded from /roadmaps/:id/contents when a single course is fetched.
	Levels []RoadmapContentItem `json:"levels,omitempty"`
}

// RoadmapContentItem is one level of a course roadmap.
type RoadmapContentItem struct {
	ContentID   int64  `json:"content_id"`
	Roadmap     int64  `json:"roadmap"`
	Sequence    int    `json:"sequence"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type"`
	ContentURL  string `json:"content_url"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Enrollment links a user to a course.
type Enrollment struct {
	ID     FlexID `json:"enrollment"`
	User   FlexID `json:"user"`
	Course FlexID `json:"course"`
}

type EnrollRequest struct {
	User   FlexID `json:"user" validate:"required"`
	Course FlexID `json:"course" validate:"required"`
}

// DecodeList decodes either a bare JSON array or an object wrapping the array
// under "results" or "courses", the two envelopes the courses backend uses.
func DecodeList[T any](b []byte) ([]T, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}
	if b[0] == '[' {
		var out []T
		if err := json.Unmarshal(b, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var env struct {
		Results []T `json:"results"`
		Courses []T `json:"courses"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.Results != nil {
		return env.Results, nil
	}
	return env.Courses, nil
}
