package cli

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/common"
)

func (a *App) ListJournals(ctx context.Context, q models.JournalQuery, refresh bool) error {
	entries, err := a.journals.List(ctx, q, refresh)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No journal entries yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintln(a.out, e.String())
	}
	return nil
}

func (a *App) ShowJournal(ctx context.Context, id int64) error {
	e, err := a.journals.Get(ctx, id)
	if err != nil {
		return err
	}
	printJournal(a.out, e)
	return nil
}

// CreateJournal prompts for the content and mood when they are missing.
func (a *App) CreateJournal(ctx context.Context, in models.JournalCreate) error {
	var err error
	if in.Content == "" {
		prompt := fmt.Sprintf("What did you learn today? (max %d characters)", common.JournalContentMaxLen)
		if in.Content, err = GetMultiline(a.reader, prompt, a.out); err != nil {
			return err
		}
	}
	if in.Mood == "" {
		if in.Mood, err = getSimpleText(a.reader, "How do you feel?", a.out); err != nil {
			return err
		}
	}
	if n := utf8.RuneCountInString(in.Content); n > common.JournalContentMaxLen {
		fmt.Fprintf(a.out, "Entry is %d characters long, %d over the limit.\n", n, n-common.JournalContentMaxLen)
	}

	e, err := a.journals.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved entry #%d.\n", e.ID)
	return nil
}

func (a *App) EditJournal(ctx context.Context, id int64, in models.JournalUpdate) error {
	e, err := a.journals.Update(ctx, id, in)
	if err != nil {
		return err
	}
	printJournal(a.out, e)
	return nil
}

func (a *App) DeleteJournal(ctx context.Context, id int64) error {
	if err := a.journals.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted entry #%d.\n", id)
	return nil
}

func (a *App) Moods(ctx context.Context, days int) error {
	d, err := a.journals.MoodDistribution(ctx, days)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Last %d days, %d entries\n", d.PeriodDays, d.TotalEntries)
	for _, m := range d.MoodDistribution {
		label := m.MoodDisplay
		if label == "" {
			label = m.Mood
		}
		fmt.Fprintf(a.out, "%s %-12s %d\n", m.Emoji, label, m.Count)
	}
	return nil
}
