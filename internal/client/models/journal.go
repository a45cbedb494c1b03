package models

import "fmt"

type JournalEntry struct {
	ID             int64   `json:"id"`
	UserID         string  `json:"user_id"`
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	Mood           string  `json:"mood"`
	MoodEmoji      string  `json:"mood_emoji"`
	EntryType      string  `json:"entry_type"`
	SentimentLabel string  `json:"sentiment_label"`
	SentimentScore float64 `json:"sentiment_score"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func (e JournalEntry) String() string {
	title := e.Title
	if title == "" {
		title = "Untitled"
	}
	return fmt.Sprintf("#%d %s %s [%s] %s", e.ID, e.MoodEmoji, title, e.Mood, e.CreatedAt)
}

// JournalCreate is the body of POST /journal. Content is limited to
// common.JournalContentMaxLen characters (runes).
type JournalCreate struct {
	Title   string `json:"title"`
	Content string `json:"content" validate:"required,journal_content"`
	Mood    string `json:"mood" validate:"required"`
}

type JournalUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty" validate:"omitempty,journal_content"`
	Mood    *string `json:"mood,omitempty"`
}

// JournalQuery holds the list pagination parameters.
type JournalQuery struct {
	Limit             int
	Offset            int
	IncludeOnboarding bool
}

// DefaultJournalQuery matches the backend defaults.
func DefaultJournalQuery() JournalQuery {
	return JournalQuery{Limit: 20, Offset: 0, IncludeOnboarding: true}
}

type MoodCount struct {
	Mood        string `json:"mood"`
	MoodDisplay string `json:"mood_display"`
	Emoji       string `json:"emoji"`
	Count       int    `json:"count"`
}

type MoodDistribution struct {
	PeriodDays       int         `json:"period_days"`
	TotalEntries     int         `json:"total_entries"`
	MoodDistribution []MoodCount `json:"mood_distribution"`
	GeneratedAt      string      `json:"generated_at"`
}
