// Package services contains application services for the auth client.
// This file defines the authentication service: signup, login with local
// session persistence, and access to the stored token and user id.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/potholeauth/internal/client/client"
	"github.com/dmitrijs2005/potholeauth/internal/client/repositories/securestore"
	"github.com/dmitrijs2005/potholeauth/internal/client/session"
	"github.com/dmitrijs2005/potholeauth/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Signup: create a user on the server; nothing is stored locally.
//   - Login: authenticate and, only on success, persist token and user id.
//   - GetToken / GetUserID: read the stored value, "" when absent.
//   - ClearToken / ClearUserID: remove one key; the other is left as is.
//   - Logout: remove both keys atomically.
//   - IsLoggedIn: whether a complete session is stored.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*client.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*client.AuthResponse, error)
	GetToken(ctx context.Context) (string, error)
	GetUserID(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
	ClearUserID(ctx context.Context) error
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) (bool, error)
}

// authService is the concrete AuthService backed by a remote Client and the
// local secure store.
type authService struct {
	client  client.Client
	session *session.Manager
}

// NewAuthService constructs an AuthService bound to the given API client and
// store. Each store call is bounded by storeTimeout (session.DefaultStoreTimeout
// when not positive).
func NewAuthService(c client.Client, store securestore.Store, storeTimeout time.Duration) AuthService {
	return &authService{client: c, session: session.NewManager(store, storeTimeout)}
}

func (a *authService) Signup(ctx context.Context, name, email, password string) (*client.AuthResponse, error) {
	return a.client.Signup(ctx, client.SignupRequest{Name: name, Email: email, Password: password})
}

// Login calls the server and persists the session only after a successful
// response. Any failure leaves local storage untouched.
func (a *authService) Login(ctx context.Context, email, password string) (*client.AuthResponse, error) {
	resp, err := a.client.Login(ctx, client.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if err := a.session.Save(ctx, session.Session{Token: resp.Token, UserID: resp.User.ID}); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return resp, nil
}

func (a *authService) GetToken(ctx context.Context) (string, error) {
	return a.session.Get(ctx, common.TokenKey)
}

func (a *authService) GetUserID(ctx context.Context) (string, error) {
	return a.session.Get(ctx, common.UserIDKey)
}

func (a *authService) ClearToken(ctx context.Context) error {
	return a.session.Delete(ctx, common.TokenKey)
}

func (a *authService) ClearUserID(ctx context.Context) error {
	return a.session.Delete(ctx, common.UserIDKey)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) IsLoggedIn(ctx context.Context) (bool, error) {
	_, err := a.session.Load(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, session.ErrNoSession), errors.Is(err, session.ErrPartialSession):
		return false, nil
	default:
		return false, err
	}
}
