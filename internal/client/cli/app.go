package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/nuroki/internal/client/client"
	"github.com/dmitrijs2005/nuroki/internal/client/config"
	"github.com/dmitrijs2005/nuroki/internal/client/database"
	"github.com/dmitrijs2005/nuroki/internal/client/services"
	"github.com/dmitrijs2005/nuroki/internal/client/state"
	"github.com/dmitrijs2005/nuroki/internal/client/tokens"
	"github.com/dmitrijs2005/nuroki/internal/filex"
	"github.com/dmitrijs2005/nuroki/internal/logging"
)

// App wires the services of one CLI process and implements the commands.
type App struct {
	auth       services.AuthService
	profile    services.ProfileService
	onboarding services.OnboardingService
	journals   services.JournalService
	courses    services.CourseService

	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	closers []func() error
}

// NewApp opens the local database, builds the REST client over the
// persisted token store and wires the services.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	log, err := logging.New(cfg.LogFormat, cfg.LogLevel, errOut)
	if err != nil {
		return nil, err
	}

	if _, err := filex.EnsureParentDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DBPath, "error", err)
		return nil, err
	}

	store := tokens.NewStore(tokens.NewSQLStorage(db), log)

	api, err := client.New(ctx, store, client.Options{
		BaseURL:         cfg.APIBaseURL,
		CoursesBaseURL:  cfg.CoursesBaseURL,
		Timeout:         cfg.RequestTimeout,
		CoalesceRefresh: cfg.CoalesceRefresh,
		Logger:          log,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(api, store, log, in, out)
	a.closers = append(a.closers, db.Close)
	if z, ok := log.(*logging.ZapLogger); ok {
		// Sync on a console fd fails on some platforms; nothing is lost.
		a.closers = append(a.closers, func() error { _ = z.Sync(); return nil })
	}
	return a, nil
}

// newApp wires the services around api. The caller owns closers.
func newApp(api *client.HTTPClient, store *tokens.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	st := state.NewApp()
	profile := services.NewProfileService(api, st)

	return &App{
		auth:       services.NewAuthService(api, store, api.Session(), st),
		profile:    profile,
		onboarding: services.NewOnboardingService(api, st),
		journals:   services.NewJournalService(api, st),
		courses:    services.NewCourseService(api, st, profile),
		log:        log,
		reader:     bufio.NewReader(in),
		out:        out,
	}
}

// Close releases the database and flushes the logger.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.Status(ctx).LoggedIn
}

// prompt is the REPL status line: the user's name when signed in.
func (a *App) prompt(ctx context.Context) string {
	st := a.auth.Status(ctx)
	if !st.LoggedIn {
		return "guest"
	}
	if st.Profile != nil {
		return FormatName(st.Profile.FullName)
	}
	if st.Claims != nil && st.Claims.Email != "" {
		return st.Claims.Email
	}
	return "signed in"
}
