// Package session keeps the local login session (token and user id) in the
// secure store and treats the two keys as one unit.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/potholeauth/internal/client/repositories/securestore"
	"github.com/dmitrijs2005/potholeauth/internal/common"
	"github.com/dmitrijs2005/potholeauth/internal/dbx"
)

// DefaultStoreTimeout bounds each store call when no timeout is configured.
const DefaultStoreTimeout = 5 * time.Second

var (
	ErrNoSession = errors.New("no session")
	// ErrPartialSession means only one of token and user id is stored.
	ErrPartialSession = errors.New("partial session")
)

type Session struct {
	Token  string
	UserID string
}

type Manager struct {
	store   securestore.Store
	timeout time.Duration
}

// NewManager binds a Manager to store. Every store call runs under timeout,
// or DefaultStoreTimeout when timeout is not positive. A call that runs out
// of time fails with common.ErrTransient.
func NewManager(store securestore.Store, timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &Manager{store: store, timeout: timeout}
}

// Save writes token and user id in one atomic step.
func (m *Manager) Save(ctx context.Context, s Session) error {
	if s.Token == "" || s.UserID == "" {
		return fmt.Errorf("save session: token and user id are both required")
	}
	ctx, cancel := dbx.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.store.SetMany(ctx, map[string][]byte{
		common.TokenKey:  []byte(s.Token),
		common.UserIDKey: []byte(s.UserID),
	})
	return dbx.ClassifyTimeout(err)
}

// Load returns the stored session, ErrNoSession when neither key is present,
// or ErrPartialSession when only one is.
func (m *Manager) Load(ctx context.Context) (*Session, error) {
	ctx, cancel := dbx.WithTimeout(ctx, m.timeout)
	defer cancel()

	token, hasToken, err := m.store.Get(ctx, common.TokenKey)
	if err != nil {
		return nil, dbx.ClassifyTimeout(err)
	}
	userID, hasUser, err := m.store.Get(ctx, common.UserIDKey)
	if err != nil {
		return nil, dbx.ClassifyTimeout(err)
	}

	switch {
	case !hasToken && !hasUser:
		return nil, ErrNoSession
	case hasToken != hasUser:
		return nil, ErrPartialSession
	}
	return &Session{Token: string(token), UserID: string(userID)}, nil
}

// Clear removes both keys in one atomic step.
func (m *Manager) Clear(ctx context.Context) error {
	ctx, cancel := dbx.WithTimeout(ctx, m.timeout)
	defer cancel()

	return dbx.ClassifyTimeout(m.store.DeleteMany(ctx, common.TokenKey, common.UserIDKey))
}

// Get reads a single key. A missing key is "" with a nil error.
func (m *Manager) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := dbx.WithTimeout(ctx, m.timeout)
	defer cancel()

	v, ok, err := m.store.Get(ctx, key)
	if err != nil || !ok {
		return "", dbx.ClassifyTimeout(err)
	}
	return string(v), nil
}

// Delete removes a single key and leaves the other one as is.
func (m *Manager) Delete(ctx context.Context, key string) error {
	ctx, cancel := dbx.WithTimeout(ctx, m.timeout)
	defer cancel()

	return dbx.ClassifyTimeout(m.store.Delete(ctx, key))
}
