package repository

import (
	"context"

	"campus-reserve/internal/domain/equipment"
	"campus-reserve/internal/domain/reservation"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/repository/converter"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EquipmentWriteQueries interface {
	CreateEquipment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEquipmentParams) (sqlc.Equipment, error)
	GetEquipmentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Equipment, error)
	UpdateEquipment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEquipmentParams) error
	SoftDeleteEquipment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	CountActiveItemsForEquipment(ctx context.Context, db sqlc.DBTX, equipmentID uuid.UUID) (int64, error)
	SumOverlappingReservedQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.SumOverlappingReservedQuantityParams) (int64, error)
}

type EquipmentRepository struct {
	queries EquipmentWriteQueries
	db      sqlc.DBTX
}

func NewEquipmentRepository(queries EquipmentWriteQueries, db sqlc.DBTX) *EquipmentRepository {
	return &EquipmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, tx sqlc.DBTX, eq *equipment.Equipment) (uuid.UUID, error) {
	row, err := r.queries.CreateEquipment(ctx, tx, converter.EquipmentToCreateParams(eq))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create equipment", err)
	}
	return row.ID, nil
}

func (r *EquipmentRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*equipment.Equipment, error) {
	row, err := r.queries.GetEquipmentByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}
	return converter.EquipmentFromRow(row), nil
}

func (r *EquipmentRepository) Update(ctx context.Context, tx sqlc.DBTX, eq *equipment.Equipment) error {
	if err := r.queries.UpdateEquipment(ctx, tx, converter.EquipmentToUpdateParams(eq)); err != nil {
		return infra.WrapRepoErr("failed to update equipment", err)
	}
	return nil
}

// Delete is a soft delete; the row stays behind for reservation history.
func (r *EquipmentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.SoftDeleteEquipment(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to delete equipment", err)
	}
	return nil
}

func (r *EquipmentRepository) CountActiveItems(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error) {
	count, err := r.queries.CountActiveItemsForEquipment(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservation items", err)
	}
	return count, nil
}

func (r *EquipmentRepository) SumOverlappingQuantity(ctx context.Context, tx sqlc.DBTX, equipmentID uuid.UUID, slot reservation.TimeSlot) (int64, error) {
	sum, err := r.queries.SumOverlappingReservedQuantity(ctx, tx, sqlc.SumOverlappingReservedQuantityParams{
		EquipmentID:  equipmentID,
		ReservedDate: pgconv.DateToPgtype(slot.Date()),
		EndTime:      pgconv.ClockTimeToPgtype(slot.End()),
		StartTime:    pgconv.ClockTimeToPgtype(slot.Start()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum overlapping reserved quantity", err)
	}
	return sum, nil
}
