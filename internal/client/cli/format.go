package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/nuroki/internal/client/client"
	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/validation"
)

// FormatName title-cases every word of a full name and collapses runs of
// whitespace. A blank name becomes "Guest".
func FormatName(raw string) string {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return "Guest"
	}
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// describeError turns client errors into a one-line message for the user.
func describeError(err error) string {
	var (
		httpErr *client.HTTPError
		netErr  *client.NetworkError
		valErr  *validation.ValidationError
	)
	switch {
	case errors.Is(err, client.ErrSessionExpired):
		return "session expired, please log in again"
	case errors.As(err, &valErr):
		return valErr.Error()
	case errors.As(err, &httpErr):
		return fmt.Sprintf("server returned %d: %s", httpErr.Status, httpErr.Detail())
	case errors.As(err, &netErr):
		return fmt.Sprintf("cannot reach server: %v", netErr.Err)
	default:
		return err.Error()
	}
}

func printProfile(w io.Writer, p *models.UserProfile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", k, v)
		}
	}
	row("Name", FormatName(p.FullName))
	row("Email", p.Email)
	row("User ID", p.UserID)
	row("Gender", p.Gender)
	row("Date of birth", p.DateOfBirth)
	row("Picture", p.ProfilePictureURL)
	row("Interests", strings.Join(p.Interests, ", "))
	row("Skills", strings.Join(p.Skills, ", "))
	row("Bio", p.Bio)
	row("Skill level", string(p.SkillLevel))
	row("Learning goal", p.LearningGoal)
	row("Support style", p.SupportStyle)
	row("Onboarded", fmt.Sprintf("%t", p.OnboardingCompleted))
	_ = tw.Flush()
}

func printJournal(w io.Writer, e *models.JournalEntry) {
	fmt.Fprintln(w, e.String())
	if e.SentimentLabel != "" {
		fmt.Fprintf(w, "sentiment: %s (%.2f)\n", e.SentimentLabel, e.SentimentScore)
	}
	fmt.Fprintln(w, e.Content)
}

func printCourses(w io.Writer, courses []models.Course) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY\tRATING\tPROGRESS")
	for _, c := range courses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%.0f%%\n", c.ID, c.Title, c.Difficulty, c.Rating, c.Progress)
	}
	_ = tw.Flush()
}

func printCourse(w io.Writer, c *models.Course) {
	fmt.Fprintf(w, "#%d %s\n", c.ID, c.Title)
	if c.Difficulty != "" {
		fmt.Fprintf(w, "difficulty: %s  rating: %.1f\n", c.Difficulty, c.Rating)
	}
	if len(c.Tags) > 0 {
		names := make([]string, 0, len(c.Tags))
		for _, t := range c.Tags {
			names = append(names, t.Name)
		}
		fmt.Fprintf(w, "tags: %s\n", strings.Join(names, ", "))
	}
	if c.CourseURL != "" {
		fmt.Fprintln(w, c.CourseURL)
	}
	if c.Description != "" {
		fmt.Fprintln(w, c.Description)
	}
	if len(c.Levels) > 0 {
		done := 0
		for _, l := range c.Levels {
			if strings.EqualFold(l.Status, "completed") {
				done++
			}
		}
		fmt.Fprintf(w, "levels: %d of %d completed\n", done, len(c.Levels))
	}
}

func printRoadmap(w io.Writer, items []models.RoadmapContentItem) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tTYPE\tDURATION\tSTATUS")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", it.Sequence, it.Title, it.ContentType, it.Duration, it.Status)
	}
	_ = tw.Flush()
}
