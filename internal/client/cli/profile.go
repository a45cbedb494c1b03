package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
)

var errNotConfirmed = errors.New("not confirmed")

func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profile.Current(ctx)
	if err != nil {
		return err
	}
	printProfile(a.out, p)
	return nil
}

func (a *App) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) error {
	if patch.Empty() {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}
	p, err := a.profile.Update(ctx, patch)
	if err != nil {
		return err
	}
	printProfile(a.out, p)
	return nil
}

// DisableAccount deactivates the account after an explicit confirmation.
func (a *App) DisableAccount(ctx context.Context, confirmed bool) error {
	if !confirmed {
		answer, err := getSimpleText(a.reader, "This deactivates your account. Type 'yes' to continue", a.out)
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "yes") {
			return errNotConfirmed
		}
	}
	if err := a.profile.Disable(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account disabled.")
	return nil
}
