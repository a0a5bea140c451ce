package queries

import (
	"context"
	"time"

	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrAccessDenied        = errs.New("access denied")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ReservationViewRepo is the read-side port backed by the readstore package.
type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListForUser(ctx context.Context, userID uuid.UUID, status *string, limit, offset int32) ([]*ReservationListItem, error)
	ListForStaff(ctx context.Context, status *string, date *time.Time, limit, offset int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	// GetByID enforces ownership: students read only their own
	// reservations, staff and admin read any.
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem bypasses ownership for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, userID uuid.UUID, status *string, limit, offset int) ([]*ReservationListItem, error)
	ListAll(ctx context.Context, status *string, date *time.Time, limit, offset int) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actorID && !actorRole.CanManageReservations() {
		// Hide existence from other students, same as a missing row.
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, status *string, limit, offset int) ([]*ReservationListItem, error) {
	limit, offset = clampPage(limit, offset)
	return q.repo.ListForUser(ctx, userID, status, int32(limit), int32(offset))
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context, status *string, date *time.Time, limit, offset int) ([]*ReservationListItem, error) {
	limit, offset = clampPage(limit, offset)
	return q.repo.ListForStaff(ctx, status, date, int32(limit), int32(offset))
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
