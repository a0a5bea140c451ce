package repository

import (
	"context"

	"campus-reserve/internal/domain/reservation"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/repository/converter"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	CreateReservationItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationItemParams) (sqlc.ReservationItems, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Reservations, error)
	GetReservationItems(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationItems, error)
	UpdateReservationState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStateParams) error
	UpdateReservationItemState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationItemStateParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToCreateParams(res)
	row, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	for _, item := range res.Items() {
		if _, err := r.queries.CreateReservationItem(ctx, tx, converter.ItemToCreateParams(row.ID, item)); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create reservation item", err)
		}
	}

	return row.ID, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return r.loadAggregate(ctx, tx, row)
}

func (r *ReservationRepository) FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, code string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByCodeForUpdate(ctx, tx, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by code", err)
	}
	return r.loadAggregate(ctx, tx, row)
}

func (r *ReservationRepository) SaveState(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservationState(ctx, tx, converter.ReservationToStateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation state", err)
	}
	for _, item := range res.Items() {
		if err := r.queries.UpdateReservationItemState(ctx, tx, converter.ItemToStateParams(item)); err != nil {
			return infra.WrapRepoErr("failed to update reservation item state", err)
		}
	}
	return nil
}

func (r *ReservationRepository) loadAggregate(ctx context.Context, tx sqlc.DBTX, row sqlc.Reservations) (*reservation.Reservation, error) {
	itemRows, err := r.queries.GetReservationItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation items", err)
	}
	res, err := converter.ReservationFromRows(row, itemRows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation row", err)
	}
	return res, nil
}
