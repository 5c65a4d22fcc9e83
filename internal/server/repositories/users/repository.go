// Package users is the credential store: durable storage and lookup of user
// identity records keyed by normalized email.
package users

import (
	"context"

	"github.com/dmitrijs2005/potholeauth/internal/server/models"
)

// Repository stores users. Implementations must enforce email uniqueness
// themselves and report a clash as common.ErrDuplicateEmail; a missing user
// is common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
