package readstore

import (
	"context"

	"campus-reserve/internal/infra"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/pgconv"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentViewQueries interface {
	GetEquipmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Equipment, error)
	ListEquipment(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEquipmentParams) ([]sqlc.Equipment, error)
	ListEquipmentCategories(ctx context.Context, db sqlc.DBTX) ([]string, error)
	ListOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingReservationsParams) ([]sqlc.ListOverlappingReservationsRow, error)
	SumOverlappingReservedQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.SumOverlappingReservedQuantityParams) (int64, error)
}

type EquipmentReadStore struct {
	queries EquipmentViewQueries
	db      sqlc.DBTX
}

func NewEquipmentReadStore(queries EquipmentViewQueries, db sqlc.DBTX) *EquipmentReadStore {
	return &EquipmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *EquipmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EquipmentView, error) {
	row, err := s.queries.GetEquipmentByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}
	return toEquipmentView(row), nil
}

func (s *EquipmentReadStore) List(ctx context.Context, category, status *string, limit, offset int32) ([]*queries.EquipmentView, error) {
	rows, err := s.queries.ListEquipment(ctx, s.db, sqlc.ListEquipmentParams{
		Limit:    limit,
		Offset:   offset,
		Category: pgconv.StringPtrToPgtype(category),
		Status:   pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}

	result := make([]*queries.EquipmentView, len(rows))
	for i, row := range rows {
		result[i] = toEquipmentView(row)
	}
	return result, nil
}

func (s *EquipmentReadStore) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.queries.ListEquipmentCategories(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment categories", err)
	}
	return categories, nil
}

// Availability reports the free quantity of one equipment in a window. The
// read path takes no locks; the create command re-checks under FOR UPDATE.
func (s *EquipmentReadStore) Availability(ctx context.Context, view *queries.AvailabilityView) (*queries.AvailabilityView, error) {
	row, err := s.queries.GetEquipmentByID(ctx, s.db, view.EquipmentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}

	reserved, err := s.queries.SumOverlappingReservedQuantity(ctx, s.db, sqlc.SumOverlappingReservedQuantityParams{
		EquipmentID:          view.EquipmentID,
		ReservedDate:         pgconv.DateToPgtype(view.ReservedDate),
		EndTime:              pgconv.ClockTimeToPgtype(view.EndTime),
		StartTime:            pgconv.ClockTimeToPgtype(view.StartTime),
		ExcludeReservationID: pgconv.UUIDPtrToNullUUID(view.ExcludeReservationID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum overlapping reserved quantity", err)
	}

	conflicts, err := s.queries.ListOverlappingReservations(ctx, s.db, sqlc.ListOverlappingReservationsParams{
		EquipmentID:          view.EquipmentID,
		ReservedDate:         pgconv.DateToPgtype(view.ReservedDate),
		EndTime:              pgconv.ClockTimeToPgtype(view.EndTime),
		StartTime:            pgconv.ClockTimeToPgtype(view.StartTime),
		ExcludeReservationID: pgconv.UUIDPtrToNullUUID(view.ExcludeReservationID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}

	view.TotalQuantity = int64(row.TotalQuantity)
	view.Reserved = reserved
	view.Available = view.TotalQuantity - reserved
	if view.Available < 0 {
		view.Available = 0
	}
	view.Conflicts = make([]queries.ConflictingSlotView, len(conflicts))
	for i, c := range conflicts {
		view.Conflicts[i] = queries.ConflictingSlotView{
			StartTime: pgconv.ClockTimeFromPgtype(c.StartTime, view.ReservedDate),
			EndTime:   pgconv.ClockTimeFromPgtype(c.EndTime, view.ReservedDate),
			Status:    c.Status,
			Quantity:  c.Quantity,
		}
	}
	return view, nil
}

func toEquipmentView(row sqlc.Equipment) *queries.EquipmentView {
	return &queries.EquipmentView{
		ID:            row.ID,
		Name:          row.Name,
		Description:   row.Description,
		Category:      row.Category,
		Status:        row.Status,
		TotalQuantity: row.TotalQuantity,
		Location:      pgconv.StringPtrFromPgtype(row.Location),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
