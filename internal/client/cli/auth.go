package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/client/session"
	"github.com/dmitrijs2005/facultyip/internal/common"
)

// Login prompts for credentials and signs in expecting the given role.
// A role mismatch is reported as "Invalid user type" and nothing is kept.
func (a *App) Login(ctx context.Context, role models.Role) error {
	return a.busy.do(func() error {
		email, err := getSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}

		password, err := getPassword(a.reader, a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)

		id, err := a.session.Login(ctx, email, string(password), role)
		if err != nil {
			a.notify.Failure(ctx, session.Reason(err, session.LoginFailed), err)
			return err
		}

		a.notify.Success("Login successful!")
		a.navigate(session.Home(id))
		return nil
	})
}

// Register creates a faculty account. Admin accounts cannot be created
// from the CLI.
func (a *App) Register(ctx context.Context) error {
	return a.busy.do(func() error {
		fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
		if err != nil {
			return err
		}
		email, err := getSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}

		password, err := getPassword(a.reader, a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)

		id, err := a.session.Register(ctx, email, string(password), fullName, models.RoleFaculty)
		if err != nil {
			a.notify.Failure(ctx, session.Reason(err, session.RegistrationFailed), err)
			return err
		}

		a.notify.Success("Account created successfully!")
		a.navigate(session.Home(id))
		return nil
	})
}

// Logout clears the session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.notify.Success("Logged out")
	a.navigate(session.ViewLanding)
	return nil
}

// WhoAmI prints the current identity and the credential's expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	id := a.session.Current()
	if id == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "Name:  %s\n", id.DisplayName())
	fmt.Fprintf(a.out, "Email: %s\n", id.Email)
	fmt.Fprintf(a.out, "Role:  %s\n", id.Role)

	token, err := a.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("read credential: %w", err)
	}
	if exp, ok := session.CredentialExpiry(token); ok {
		state := "valid"
		if time.Now().After(exp) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Token: %s until %s\n", state, exp.Local().Format(time.RFC1123))
	} else {
		fmt.Fprintln(a.out, "Token: expiry unknown")
	}
	return nil
}

func isBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}
