package converter

import (
	"campus-reserve/internal/domain/equipment"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func EquipmentToCreateParams(eq *equipment.Equipment) sqlc.CreateEquipmentParams {
	return sqlc.CreateEquipmentParams{
		Name:          eq.Name(),
		Description:   eq.Description(),
		Category:      eq.Category(),
		Status:        eq.Status().String(),
		TotalQuantity: pgconv.IntToInt32(eq.TotalQuantity()),
		Location:      locationToPgtype(eq.Location()),
	}
}

func EquipmentToUpdateParams(eq *equipment.Equipment) sqlc.UpdateEquipmentParams {
	return sqlc.UpdateEquipmentParams{
		ID:            eq.ID(),
		Name:          eq.Name(),
		Description:   eq.Description(),
		Category:      eq.Category(),
		Status:        eq.Status().String(),
		TotalQuantity: pgconv.IntToInt32(eq.TotalQuantity()),
		Location:      locationToPgtype(eq.Location()),
	}
}

func locationToPgtype(location string) pgtype.Text {
	if location == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: location, Valid: true}
}

func EquipmentFromRow(row sqlc.Equipment) *equipment.Equipment {
	return equipment.ReconstructEquipment(
		row.ID,
		row.Name,
		row.Description,
		row.Category,
		equipment.Status(row.Status),
		int(row.TotalQuantity),
		row.Location.String,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
