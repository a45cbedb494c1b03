package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nuroki/internal/client/client"
	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/client/state"
)

// JournalService manages journal entries. The first page with default
// parameters is cached in state until a write or an explicit refresh.
type JournalService interface {
	List(ctx context.Context, q models.JournalQuery, refresh bool) ([]models.JournalEntry, error)
	Get(ctx context.Context, id int64) (*models.JournalEntry, error)
	Create(ctx context.Context, in models.JournalCreate) (*models.JournalEntry, error)
	Update(ctx context.Context, id int64, in models.JournalUpdate) (*models.JournalEntry, error)
	Delete(ctx context.Context, id int64) error
	MoodDistribution(ctx context.Context, days int) (*models.MoodDistribution, error)
}

type journalService struct {
	api client.API
	app *state.App
}

func NewJournalService(api client.API, app *state.App) JournalService {
	return &journalService{api: api, app: app}
}

func (s *journalService) List(ctx context.Context, q models.JournalQuery, refresh bool) ([]models.JournalEntry, error) {
	cacheable := q == models.DefaultJournalQuery()
	if cacheable && !refresh {
		if items, ok := s.app.Journals.Get(); ok {
			return items, nil
		}
	}

	items, err := s.api.ListJournals(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	if cacheable {
		s.app.Journals.Set(items)
	}
	return items, nil
}

func (s *journalService) Get(ctx context.Context, id int64) (*models.JournalEntry, error) {
	e, err := s.api.GetJournal(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get journal %d: %w", id, err)
	}
	return e, nil
}

// Create rejects content over 150 characters before any request is sent.
func (s *journalService) Create(ctx context.Context, in models.JournalCreate) (*models.JournalEntry, error) {
	e, err := s.api.CreateJournal(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}
	s.app.Journals.Invalidate()
	return e, nil
}

func (s *journalService) Update(ctx context.Context, id int64, in models.JournalUpdate) (*models.JournalEntry, error) {
	e, err := s.api.UpdateJournal(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update journal %d: %w", id, err)
	}
	s.app.Journals.Invalidate()
	return e, nil
}

func (s *journalService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteJournal(ctx, id); err != nil {
		return fmt.Errorf("delete journal %d: %w", id, err)
	}
	s.app.Journals.Invalidate()
	return nil
}

func (s *journalService) MoodDistribution(ctx context.Context, days int) (*models.MoodDistribution, error) {
	d, err := s.api.MoodDistribution(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("mood distribution: %w", err)
	}
	return d, nil
}
