package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/potholeauth/internal/client/client"
	"github.com/dmitrijs2005/potholeauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email and password and creates the account. It
// does not log the user in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
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

	resp, err := a.authService.Signup(ctx, name, email, string(password))
	if err != nil {
		reportFailure("Signup", err)
		return err
	}

	fmt.Fprintf(a.out, "Account created for %s. You can now log in.\n", resp.User.Email)
	return nil
}

// Login prompts for credentials. On success the session is stored locally;
// on any failure nothing is written.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		reportFailure("Login", err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", resp.User.Name)
	return nil
}

// Logout removes the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("Logout failed: %v", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the stored user id.
func (a *App) WhoAmI(ctx context.Context) error {
	uid, err := a.authService.GetUserID(ctx)
	if err != nil {
		log.Printf("cannot read user id: %v", err)
		return err
	}
	if uid == "" {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintln(a.out, uid)
	return nil
}

func reportFailure(op string, err error) {
	if errors.Is(err, client.ErrUnavailable) {
		log.Printf("%s failed: server unavailable, try again later (%v)", op, err)
		return
	}
	log.Printf("%s failed: %v", op, err)
}
