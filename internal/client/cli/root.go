package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) getStatus(ctx context.Context) string {
	if a.isLoggedIn(ctx) {
		return "(logged in)"
	}
	return "(guest)"
}

// Root greets the user, restores or asks for a session, and runs the REPL.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the auth CLI (type 'help' for commands)")

	ok, err := a.authService.IsLoggedIn(ctx)
	if err != nil {
		log.Printf("cannot read local session: %v", err)
	}
	if ok {
		uid, _ := a.authService.GetUserID(ctx)
		fmt.Fprintf(a.out, "Session restored for user %s\n", uid)
	} else {
		fmt.Fprintln(a.out, "No active session, please log in (or type 'signup' at the prompt)")
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}
