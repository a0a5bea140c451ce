package readstore

import (
	"context"
	"time"

	"campus-reserve/internal/infra"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/pgconv"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationWithUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationWithUserRow, error)
	ListItemsForReservations(ctx context.Context, db sqlc.DBTX, reservationIds []uuid.UUID) ([]sqlc.ListItemsForReservationsRow, error)
	ListUserReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUserReservationsParams) ([]sqlc.Reservations, error)
	ListReservationsForStaff(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsForStaffParams) ([]sqlc.ListReservationsForStaffRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationWithUser(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	itemRows, err := r.queries.ListItemsForReservations(ctx, r.db, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation items", err)
	}

	view := rowToReservationView(row)
	view.Items = toItemViews(itemRows)
	return view, nil
}

func (r *ReservationReadStore) ListForUser(ctx context.Context, userID uuid.UUID, status *string, limit, offset int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListUserReservations(ctx, r.db, sqlc.ListUserReservationsParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
		Status: pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	counts, err := r.itemCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		date := pgconv.DateFromPgtype(row.ReservedDate)
		result[i] = &queries.ReservationListItem{
			ID:           row.ID,
			Code:         row.Code,
			ReservedDate: date,
			StartTime:    pgconv.ClockTimeFromPgtype(row.StartTime, date),
			EndTime:      pgconv.ClockTimeFromPgtype(row.EndTime, date),
			Purpose:      row.Purpose,
			Status:       row.Status,
			ItemCount:    counts[row.ID],
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) ListForStaff(ctx context.Context, status *string, date *time.Time, limit, offset int32) ([]*queries.ReservationListItem, error) {
	params := sqlc.ListReservationsForStaffParams{
		Limit:  limit,
		Offset: offset,
		Status: pgconv.StringPtrToPgtype(status),
	}
	if date != nil {
		params.ReservedDate = pgconv.DateToPgtype(*date)
	}

	rows, err := r.queries.ListReservationsForStaff(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for staff", err)
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	counts, err := r.itemCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		date := pgconv.DateFromPgtype(row.ReservedDate)
		result[i] = &queries.ReservationListItem{
			ID:           row.ID,
			Code:         row.Code,
			ReservedDate: date,
			StartTime:    pgconv.ClockTimeFromPgtype(row.StartTime, date),
			EndTime:      pgconv.ClockTimeFromPgtype(row.EndTime, date),
			Purpose:      row.Purpose,
			Status:       row.Status,
			ItemCount:    counts[row.ID],
			UserEmail:    row.UserEmail,
			UserName:     row.UserName,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) itemCounts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	itemRows, err := r.queries.ListItemsForReservations(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation items", err)
	}
	for _, ir := range itemRows {
		counts[ir.ReservationID]++
	}
	return counts, nil
}

func rowToReservationView(row sqlc.GetReservationWithUserRow) *queries.ReservationView {
	date := pgconv.DateFromPgtype(row.ReservedDate)
	return &queries.ReservationView{
		ID:                row.ID,
		UserID:            row.UserID,
		UserEmail:         row.UserEmail,
		UserName:          row.UserName,
		Code:              row.Code,
		ReservedDate:      date,
		StartTime:         pgconv.ClockTimeFromPgtype(row.StartTime, date),
		EndTime:           pgconv.ClockTimeFromPgtype(row.EndTime, date),
		Purpose:           row.Purpose,
		Note:              pgconv.StringPtrFromPgtype(row.Note),
		AdminNote:         pgconv.StringPtrFromPgtype(row.AdminNote),
		Status:            row.Status,
		ApprovedAt:        pgconv.TimePtrFromPgtype(row.ApprovedAt),
		ApprovedBy:        row.ApprovedBy,
		IssuedAt:          pgconv.TimePtrFromPgtype(row.IssuedAt),
		IssuedBy:          row.IssuedBy,
		ReturnRequestedAt: pgconv.TimePtrFromPgtype(row.ReturnRequestedAt),
		ReturnedAt:        pgconv.TimePtrFromPgtype(row.ReturnedAt),
		ReturnedBy:        row.ReturnedBy,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toItemViews(rows []sqlc.ListItemsForReservationsRow) []queries.ReservationItemView {
	views := make([]queries.ReservationItemView, len(rows))
	for i, row := range rows {
		views[i] = queries.ReservationItemView{
			ID:                row.ID,
			EquipmentID:       row.EquipmentID,
			EquipmentName:     row.EquipmentName,
			EquipmentCategory: row.EquipmentCategory,
			Quantity:          row.Quantity,
			Status:            row.Status,
			IssuedAt:          pgconv.TimePtrFromPgtype(row.IssuedAt),
			ReturnedAt:        pgconv.TimePtrFromPgtype(row.ReturnedAt),
		}
	}
	return views
}
