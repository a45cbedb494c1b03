package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes one command line against a shared App.
func runCommand(a *App, args ...string) error {
	root := NewRootCommand(func(context.Context, *cobra.Command) (*App, error) { return a, nil })
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestRootCommand_LoginAndJournal(t *testing.T) {
	a, out, b := newTestApp(t, "pw12345\n")

	require.NoError(t, runCommand(a, "login", "--email", "ada@example.com", "--api", "ignored"))
	assert.Contains(t, out.String(), "Welcome, Ada Lovelace!")

	out.Reset()
	require.NoError(t, runCommand(a, "journal", "list", "--limit", "5", "--no-onboarding"))
	assert.Contains(t, out.String(), "Day one")

	require.NoError(t, runCommand(a, "journal", "create", "--mood", "happy", "learned", "about", "cobra"))
	sent := b.lastEntry.Load().(map[string]any)
	assert.Equal(t, "learned about cobra", sent["content"])
	assert.Equal(t, "happy", sent["mood"])

	require.NoError(t, runCommand(a, "journal", "delete", "7"))
	assert.Equal(t, int32(1), b.deletes.Load())
}

func TestRootCommand_ProfileUpdateSendsOnlyChangedFlags(t *testing.T) {
	a, _, b := newTestApp(t, "pw12345\n")
	require.NoError(t, runCommand(a, "login", "--email", "ada@example.com"))

	require.NoError(t, runCommand(a, "profile", "update", "--name", "Ada King", "--skills", "math, poetry"))

	patch := b.lastPatch.Load().(map[string]any)
	assert.Equal(t, map[string]any{
		"full_name": "Ada King",
		"skills":    []any{"math", "poetry"},
	}, patch)
}

func TestRootCommand_ProfileUpdateWithoutFlags(t *testing.T) {
	a, out, b := newTestApp(t, "")

	require.NoError(t, runCommand(a, "profile", "update"))
	assert.Contains(t, out.String(), "Nothing to update.")
	assert.Nil(t, b.lastPatch.Load())
}

func TestRootCommand_InvalidID(t *testing.T) {
	a, _, _ := newTestApp(t, "")

	err := runCommand(a, "courses", "show", "abc")
	assert.EqualError(t, err, `invalid id "abc"`)

	err = runCommand(a, "enrollments", "add", "0")
	assert.EqualError(t, err, `invalid id "0"`)
}

func TestRootCommand_ArgsAreChecked(t *testing.T) {
	a, _, _ := newTestApp(t, "")

	assert.Error(t, runCommand(a, "journal", "show"))
	assert.Error(t, runCommand(a, "status", "extra"))
	assert.Error(t, runCommand(a, "nosuchcommand"))
}

func TestRootCommand_FactoryErrorStopsCommand(t *testing.T) {
	boom := errors.New("cannot open database")
	root := NewRootCommand(func(context.Context, *cobra.Command) (*App, error) { return nil, boom })
	root.SetArgs([]string{"status"})

	assert.ErrorIs(t, root.ExecuteContext(context.Background()), boom)
}

func TestRootCommand_CoursesWithoutLogin(t *testing.T) {
	a, out, _ := newTestApp(t, "")

	require.NoError(t, runCommand(a, "courses", "list"))
	assert.Contains(t, out.String(), "Go basics")
}

func TestRootCommand_VersionNeedsNoApp(t *testing.T) {
	root := NewRootCommand(func(context.Context, *cobra.Command) (*App, error) {
		t.Fatal("factory must not be called")
		return nil, nil
	})
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, buf.String(), "Build version:")
}
