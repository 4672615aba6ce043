package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// readSecret prompts for a password and returns it as a string, wiping the
// raw bytes.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register prompts for name, email and password twice, then creates the
// account. Outcome messages come from the session controller.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Password")
	if err != nil {
		return err
	}
	confirm, err := a.readSecret("Confirm password")
	if err != nil {
		return err
	}

	_, err = a.session.Register(ctx, name, email, password, confirm)
	return err
}

// Login prompts for email and password and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Password")
	if err != nil {
		return err
	}

	_, err = a.session.Login(ctx, email, password)
	return err
}

func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// WhoAmI prints the signed-in account.
func (a *App) WhoAmI(_ context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>, member since %s\n", u.Name, u.Email, u.CreatedAt)
	return nil
}
