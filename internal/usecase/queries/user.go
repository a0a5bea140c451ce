package queries

import (
	"context"

	"campus-reserve/internal/domain/user"

	"github.com/google/uuid"
)

// UserReadStore exposes the user rows the auth flow needs. FindByEmail
// returns the stored password hash alongside the view so the caller can
// verify credentials without a second round trip.
type UserReadStore interface {
	FindByEmail(ctx context.Context, email user.Email) (*AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}
