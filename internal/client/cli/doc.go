// Package cli provides the interactive auth command-line client.
//
// It wires configuration, the local secure store, the HTTP API client and an
// interactive REPL. On startup it looks for a stored session; without one the
// user is taken straight to the login prompt.
//
// Commands:
//   - signup, login, logout
//   - whoami: print the stored user id
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
