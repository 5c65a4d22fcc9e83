// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login and session token verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/potholeauth/internal/common"
	"github.com/dmitrijs2005/potholeauth/internal/dbx"
	"github.com/dmitrijs2005/potholeauth/internal/logging"
	"github.com/dmitrijs2005/potholeauth/internal/server/auth"
	"github.com/dmitrijs2005/potholeauth/internal/server/config"
	"github.com/dmitrijs2005/potholeauth/internal/server/models"
	"github.com/dmitrijs2005/potholeauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/potholeauth/internal/validate"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// AuthResult is what a successful signup or login hands back to the caller.
type AuthResult struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

type signupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserService provides authentication-related operations:
//   - Signup: create a user and mint a session token
//   - Login: verify credentials and mint a session token
//   - VerifyToken: recover the user id from a session token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                auth.PasswordHasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	storeTimeout          time.Duration
	logger                logging.Logger
	now                   func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
// The signing secret is copied out of cfg once; later config changes do not
// affect the service.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		storeTimeout:          cfg.RequestTimeout,
		logger:                logger.With("module", "user_service"),
		now:                   time.Now,
	}
}

// Signup registers a user. The email is normalized before it reaches the
// store; uniqueness is left entirely to the store, which reports a clash as
// common.ErrDuplicateEmail.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*AuthResult, error) {
	in := signupInput{
		Name:     strings.TrimSpace(name),
		Email:    models.NormalizeEmail(email),
		Password: password,
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, validate.Message("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	user, err := s.createUser(ctx, &models.User{Name: in.Name, Email: in.Email, PasswordHash: digest})
	if err != nil {
		return nil, err
	}

	return s.issue(ctx, user)
}

// Login checks email and password against the stored record. An unknown
// email is common.ErrUserNotFound; a wrong password is
// common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	in := loginInput{Email: models.NormalizeEmail(email), Password: password}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	if len(in.Password) > maxPasswordBytes {
		return nil, common.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "stored password hash unreadable", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

// VerifyToken returns the user id carried by a valid, unexpired token.
func (s *UserService) VerifyToken(ctx context.Context, token string) (string, error) {
	return auth.GetUserIDFromTokenAt(token, s.jwtSecret, s.now())
}

// --- helpers below ---

func (s *UserService) createUser(ctx context.Context, u *models.User) (*models.User, error) {
	ctx, cancel := dbx.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.repomanager.Users(s.db).Create(ctx, u)
	if err != nil {
		return nil, s.storeError(ctx, "create user", err)
	}
	return user, nil
}

func (s *UserService) findUser(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := dbx.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, s.storeError(ctx, "find user", err)
	}
	return user, nil
}

// storeError classifies a repository failure: definitive domain errors pass
// through, timeouts become common.ErrTransient, the rest common.ErrPersistence.
func (s *UserService) storeError(ctx context.Context, op string, err error) error {
	if errors.Is(err, common.ErrDuplicateEmail) {
		return err
	}
	if err = dbx.ClassifyTimeout(err); errors.Is(err, common.ErrTransient) {
		s.logger.Warn(ctx, op+" timed out", "error", err)
		return err
	}
	s.logger.Error(ctx, op+" failed", "error", err)
	return fmt.Errorf("%w: %s", common.ErrPersistence, op)
}

func (s *UserService) issue(ctx context.Context, u *models.User) (*AuthResult, error) {
	token, err := auth.GenerateTokenAt(u.ID, s.jwtSecret, s.now(), s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return nil, common.ErrorInternal
	}
	return &AuthResult{User: u.Public(), Token: token}, nil
}
