package queries

import (
	"context"
	"time"

	"campus-reserve/internal/infra"
	"campus-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEquipmentNotFound = errs.New("equipment not found")
	ErrInvalidWindow     = errs.New("invalid availability window")
)

type EquipmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	List(ctx context.Context, category, status *string, limit, offset int32) ([]*EquipmentView, error)
	Categories(ctx context.Context) ([]string, error)
	Availability(ctx context.Context, view *AvailabilityView) (*AvailabilityView, error)
}

type EquipmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	List(ctx context.Context, category, status *string, limit, offset int) ([]*EquipmentView, error)
	Categories(ctx context.Context) ([]string, error)
	// Availability reports free quantity for one equipment in a window.
	// The answer is advisory; creation re-checks under a row lock. A
	// non-nil exclude leaves that reservation out of the overlap math.
	Availability(ctx context.Context, equipmentID uuid.UUID, date, start, end time.Time, exclude *uuid.UUID) (*AvailabilityView, error)
}

type equipmentQueriesImpl struct {
	repo EquipmentViewRepo
}

func NewEquipmentQueries(repo EquipmentViewRepo) EquipmentQueries {
	return &equipmentQueriesImpl{repo: repo}
}

func (q *equipmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *equipmentQueriesImpl) List(ctx context.Context, category, status *string, limit, offset int) ([]*EquipmentView, error) {
	limit, offset = clampPage(limit, offset)
	return q.repo.List(ctx, category, status, int32(limit), int32(offset))
}

func (q *equipmentQueriesImpl) Categories(ctx context.Context) ([]string, error) {
	return q.repo.Categories(ctx)
}

func (q *equipmentQueriesImpl) Availability(ctx context.Context, equipmentID uuid.UUID, date, start, end time.Time, exclude *uuid.UUID) (*AvailabilityView, error) {
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}
	view, err := q.repo.Availability(ctx, &AvailabilityView{
		EquipmentID:          equipmentID,
		ReservedDate:         date,
		StartTime:            start,
		EndTime:              end,
		ExcludeReservationID: exclude,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return view, nil
}
