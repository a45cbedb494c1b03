package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context, email, fullName string) error
	Login(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	Onboarding(ctx context.Context) error
	ListJournals(ctx context.Context, q models.JournalQuery, refresh bool) error
	ShowJournal(ctx context.Context, id int64) error
	CreateJournal(ctx context.Context, in models.JournalCreate) error
	DeleteJournal(ctx context.Context, id int64) error
	Moods(ctx context.Context, days int) error
	ListCourses(ctx context.Context, refresh bool) error
	ShowCourse(ctx context.Context, id int64) error
	Roadmap(ctx context.Context, id int64) error
	ListEnrollments(ctx context.Context) error
	Enroll(ctx context.Context, courseID int64) error
}

const (
	guestHelp  = "Available commands: register, login, courses, course <id>, roadmap <id>, exit"
	memberHelp = "Available commands: status, profile, onboarding, journals, journal <id>, write, delete <id>, " +
		"moods [days], courses, course <id>, roadmap <id>, enrollments, enroll <course id>, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF, on "exit"/"quit", or when ctx is cancelled.
//
// Command errors are printed and the loop continues; a session-expired error
// just means the next command needs a fresh login.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("nuroki (%s) > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", describeError(err))
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn(ctx) {
			printlnFn(memberHelp)
		} else {
			printlnFn(guestHelp)
		}
		return nil

	case "register":
		return a.Register(ctx, argAt(args, 0), strings.Join(tail(args, 1), " "))
	case "login":
		return a.Login(ctx, argAt(args, 0))
	case "logout":
		return a.Logout(ctx)
	case "status":
		return a.Status(ctx)
	case "profile":
		return a.ShowProfile(ctx)
	case "onboarding":
		return a.Onboarding(ctx)

	case "l", "journals":
		return a.ListJournals(ctx, models.DefaultJournalQuery(), len(args) > 0 && args[0] == "refresh")
	case "journal":
		return withID(args, "journal <id>", func(id int64) error { return a.ShowJournal(ctx, id) })
	case "write":
		return a.CreateJournal(ctx, models.JournalCreate{})
	case "delete":
		return withID(args, "delete <id>", func(id int64) error { return a.DeleteJournal(ctx, id) })
	case "moods":
		days := 30
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				printlnFn("Usage: moods [days]")
				return nil
			}
			days = n
		}
		return a.Moods(ctx, days)

	case "courses":
		return a.ListCourses(ctx, len(args) > 0 && args[0] == "refresh")
	case "course":
		return withID(args, "course <id>", func(id int64) error { return a.ShowCourse(ctx, id) })
	case "roadmap":
		return withID(args, "roadmap <id>", func(id int64) error { return a.Roadmap(ctx, id) })
	case "enrollments":
		return a.ListEnrollments(ctx)
	case "enroll":
		return withID(args, "enroll <course id>", func(id int64) error { return a.Enroll(ctx, id) })

	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

func withID(args []string, usage string, fn func(id int64) error) error {
	if len(args) == 0 {
		printlnFn("Usage:", usage)
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage:", usage)
		return nil
	}
	return fn(id)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func tail(args []string, from int) []string {
	if from < len(args) {
		return args[from:]
	}
	return nil
}

// Shell runs the interactive REPL until the user exits.
func (a *App) Shell(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to nuroki (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.prompt(ctx) }, a.reader)
}
