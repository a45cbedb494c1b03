package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nuroki/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for whatever credentials were not given and signs in. The
// password is wiped before returning.
func (a *App) Login(ctx context.Context, email string) error {
	var err error
	if email == "" {
		if email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	p, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", FormatName(p.FullName))
	if !p.OnboardingCompleted {
		fmt.Fprintln(a.out, "Your onboarding is not finished yet; run 'onboarding' to complete it.")
	}
	return nil
}

// Register creates an account. It does not sign in.
func (a *App) Register(ctx context.Context, email, fullName string) error {
	var err error
	if email == "" {
		if email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
			return err
		}
	}
	if fullName == "" {
		if fullName, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Register(ctx, email, string(password), fullName)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account %s created. You can log in now.\n", resp.Email)
	return nil
}

// Logout always forgets the local session. A failed server call is only
// reported.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	st := a.auth.Status(ctx)
	if !st.LoggedIn {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	name := "unknown user"
	switch {
	case st.Profile != nil:
		name = FormatName(st.Profile.FullName)
	case st.Claims != nil && st.Claims.Email != "":
		name = st.Claims.Email
	}
	fmt.Fprintf(a.out, "Logged in as %s (session %s)\n", name, st.State)

	if c := st.Claims; c != nil {
		if c.UserID != "" {
			fmt.Fprintf(a.out, "user id: %s\n", c.UserID)
		}
		if !c.ExpiresAt.IsZero() {
			note := ""
			if c.Expired(time.Now()) {
				note = " (expired, will refresh on next request)"
			}
			fmt.Fprintf(a.out, "access token expires: %s%s\n", c.ExpiresAt.Local().Format(time.RFC1123), note)
		}
	}
	return nil
}
