package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/nuroki/internal/buildinfo"
	"github.com/dmitrijs2005/nuroki/internal/client/config"
	"github.com/dmitrijs2005/nuroki/internal/client/models"
)

// AppFactory builds the App a command runs against.
type AppFactory func(ctx context.Context, cmd *cobra.Command) (*App, error)

// DefaultAppFactory loads the configuration from os.Args and the
// environment and opens the local database.
func DefaultAppFactory(ctx context.Context, cmd *cobra.Command) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewApp(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// appHolder keeps the App created by the pre-run hook so that it can be
// closed whether or not the command succeeded.
type appHolder struct {
	app *App
}

func (h *appHolder) close() error {
	if h.app == nil {
		return nil
	}
	err := h.app.Close()
	h.app = nil
	return err
}

// NewRootCommand returns the nuroki command tree. Without a subcommand it
// starts the interactive shell.
func NewRootCommand(factory AppFactory) *cobra.Command {
	root, _ := newRootCommand(factory)
	return root
}

func newRootCommand(factory AppFactory) (*cobra.Command, *appHolder) {
	h := &appHolder{}

	root := &cobra.Command{
		Use:           "nuroki",
		Short:         "Command-line client for the nuroki learning platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := factory(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			h.app = a
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return h.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			h.app.Shell(cmd.Context())
			return nil
		},
	}

	// Parsed by config.Load; declared here so cobra accepts them.
	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "path to a YAML or JSON config file")
	pf.StringP("api", "a", "", "backend API base URL")
	pf.DurationP("timeout", "t", 0, "per-request timeout")
	pf.String("log-level", "", "debug, info, warn or error")

	get := func() *App { return h.app }

	root.AddCommand(
		newLoginCommand(get),
		newRegisterCommand(get),
		newLogoutCommand(get),
		newStatusCommand(get),
		newProfileCommand(get),
		newOnboardingCommand(get),
		newJournalCommand(get),
		newCoursesCommand(get),
		newEnrollmentsCommand(get),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			// No App is needed; skip the root pre-run.
			PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
			Run: func(cmd *cobra.Command, _ []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "shell",
			Short: "Start the interactive shell",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				get().Shell(cmd.Context())
				return nil
			},
		},
	)
	return root, h
}

func newLoginCommand(app func() *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in; the password is always prompted for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Login(cmd.Context(), email)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func newRegisterCommand(app func() *App) *cobra.Command {
	var email, name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Register(cmd.Context(), email, name)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	return cmd
}

func newLogoutCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Logout(cmd.Context())
		},
	}
}

func newStatusCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Status(cmd.Context())
		},
	}
}

func newProfileCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the user profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().ShowProfile(cmd.Context())
		},
	}

	var (
		fullName, gender, dob, picture, bio, level, goal, style string
		interests, skills                                       string
	)
	update := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields; only the given flags are sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			var patch models.ProfileUpdate
			setIfChanged := func(name string, dst **string, v string) {
				if f.Changed(name) {
					*dst = &v
				}
			}
			setIfChanged("name", &patch.FullName, fullName)
			setIfChanged("gender", &patch.Gender, gender)
			setIfChanged("birth-date", &patch.DateOfBirth, dob)
			setIfChanged("picture", &patch.ProfilePictureURL, picture)
			setIfChanged("bio", &patch.Bio, bio)
			setIfChanged("goal", &patch.LearningGoal, goal)
			setIfChanged("support-style", &patch.SupportStyle, style)
			if f.Changed("skill-level") {
				l := models.SkillLevel(level)
				patch.SkillLevel = &l
			}
			if f.Changed("interests") {
				patch.Interests = splitList(interests)
			}
			if f.Changed("skills") {
				patch.Skills = splitList(skills)
			}
			return app().UpdateProfile(cmd.Context(), patch)
		},
	}
	uf := update.Flags()
	uf.StringVar(&fullName, "name", "", "full name")
	uf.StringVar(&gender, "gender", "", "gender")
	uf.StringVar(&dob, "birth-date", "", "date of birth (YYYY-MM-DD)")
	uf.StringVar(&picture, "picture", "", "profile picture URL")
	uf.StringVar(&bio, "bio", "", "short bio")
	uf.StringVar(&level, "skill-level", "", "beginner, intermediate or advanced")
	uf.StringVar(&goal, "goal", "", "learning goal")
	uf.StringVar(&style, "support-style", "", "preferred support style")
	uf.StringVar(&interests, "interests", "", "comma separated interests")
	uf.StringVar(&skills, "skills", "", "comma separated skills")

	var yes bool
	disable := &cobra.Command{
		Use:   "disable",
		Short: "Deactivate the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().DisableAccount(cmd.Context(), yes)
		},
	}
	disable.Flags().BoolVar(&yes, "yes", false, "do not ask for confirmation")

	cmd.AddCommand(show, update, disable)
	return cmd
}

func newOnboardingCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "onboarding",
		Short: "Answer the onboarding questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Onboarding(cmd.Context())
		},
	}
}

func newJournalCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"journals"},
		Short:   "Manage learning journal entries",
	}

	var (
		q            = models.DefaultJournalQuery()
		noOnboarding bool
		refresh      bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.IncludeOnboarding = !noOnboarding
			return app().ListJournals(cmd.Context(), q, refresh)
		},
	}
	list.Flags().IntVar(&q.Limit, "limit", q.Limit, "page size")
	list.Flags().IntVar(&q.Offset, "offset", q.Offset, "entries to skip")
	list.Flags().BoolVar(&noOnboarding, "no-onboarding", false, "hide the onboarding entry")
	list.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app().ShowJournal(cmd.Context(), id)
		},
	}

	var create models.JournalCreate
	createCmd := &cobra.Command{
		Use:   "create [content...]",
		Short: "Write a new entry; missing content and mood are prompted for",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := create
			in.Content = strings.Join(args, " ")
			return app().CreateJournal(cmd.Context(), in)
		},
	}
	createCmd.Flags().StringVar(&create.Title, "title", "", "entry title")
	createCmd.Flags().StringVar(&create.Mood, "mood", "", "how you feel")

	var title, content, mood string
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an entry; only the given flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			f := cmd.Flags()
			var in models.JournalUpdate
			if f.Changed("title") {
				in.Title = &title
			}
			if f.Changed("content") {
				in.Content = &content
			}
			if f.Changed("mood") {
				in.Mood = &mood
			}
			return app().EditJournal(cmd.Context(), id, in)
		},
	}
	edit.Flags().StringVar(&title, "title", "", "entry title")
	edit.Flags().StringVar(&content, "content", "", "entry content")
	edit.Flags().StringVar(&mood, "mood", "", "how you feel")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app().DeleteJournal(cmd.Context(), id)
		},
	}

	var days int
	moods := &cobra.Command{
		Use:   "moods",
		Short: "Show the mood distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Moods(cmd.Context(), days)
		},
	}
	moods.Flags().IntVar(&days, "days", 30, "period in days")

	cmd.AddCommand(list, show, createCmd, edit, del, moods)
	return cmd
}

func newCoursesCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"course"},
		Short:   "Browse courses and roadmaps",
	}

	var refresh bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().ListCourses(cmd.Context(), refresh)
		},
	}
	list.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app().ShowCourse(cmd.Context(), id)
		},
	}

	roadmap := &cobra.Command{
		Use:   "roadmap <course id>",
		Short: "Show the roadmap contents of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app().Roadmap(cmd.Context(), id)
		},
	}

	cmd.AddCommand(list, show, roadmap)
	return cmd
}

func newEnrollmentsCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrollments",
		Short: "List or add course enrollments",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your enrollments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().ListEnrollments(cmd.Context())
		},
	}

	add := &cobra.Command{
		Use:   "add <course id>",
		Short: "Enroll in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app().Enroll(cmd.Context(), id)
		},
	}

	cmd.AddCommand(list, add)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// Execute runs the command tree against os.Args and returns the process
// exit code.
func Execute(ctx context.Context) int {
	root, h := newRootCommand(DefaultAppFactory)
	err := root.ExecuteContext(ctx)
	if cerr := h.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describeError(err))
		return 1
	}
	return 0
}
