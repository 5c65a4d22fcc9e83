// Package client talks to the auth server's HTTP API.
//
// Every call is bounded by the configured request timeout. Failures come in
// two kinds callers can tell apart with errors.Is / errors.As:
//
//   - ErrUnavailable: the server could not be reached or did not answer in
//     time (also a 503 from the server). Retrying later may succeed.
//   - *APIError: the server answered with a non-2xx status. Message carries
//     the server's {"error": ...} text and is safe to show to the user.
package client
