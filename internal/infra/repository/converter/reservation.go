package converter

import (
	"campus-reserve/internal/domain/reservation"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	slot := res.Slot()

	params := sqlc.CreateReservationParams{
		ID:           res.ID(),
		UserID:       res.UserID(),
		Code:         res.Code(),
		ReservedDate: pgconv.DateToPgtype(slot.Date()),
		StartTime:    pgconv.ClockTimeToPgtype(slot.Start()),
		EndTime:      pgconv.ClockTimeToPgtype(slot.End()),
		Purpose:      res.Purpose().String(),
	}

	if note := res.Note().String(); note != "" {
		params.Note = pgtype.Text{String: note, Valid: true}
	} else {
		params.Note = pgtype.Text{Valid: false}
	}

	return params
}

func ItemToCreateParams(reservationID uuid.UUID, item *reservation.Item) sqlc.CreateReservationItemParams {
	return sqlc.CreateReservationItemParams{
		ID:            item.ID(),
		ReservationID: reservationID,
		EquipmentID:   item.EquipmentID(),
		Quantity:      pgconv.IntToInt32(item.Quantity()),
		Status:        item.Status().String(),
	}
}

func ReservationToStateParams(res *reservation.Reservation) sqlc.UpdateReservationStateParams {
	return sqlc.UpdateReservationStateParams{
		ID:                res.ID(),
		Status:            res.Status().String(),
		AdminNote:         pgconv.StringPtrToPgtype(res.AdminNote()),
		ApprovedAt:        pgconv.TimePtrToPgtype(res.ApprovedAt()),
		ApprovedBy:        res.ApprovedBy(),
		IssuedAt:          pgconv.TimePtrToPgtype(res.IssuedAt()),
		IssuedBy:          res.IssuedBy(),
		ReturnRequestedAt: pgconv.TimePtrToPgtype(res.ReturnRequestedAt()),
		ReturnedAt:        pgconv.TimePtrToPgtype(res.ReturnedAt()),
		ReturnedBy:        res.ReturnedBy(),
	}
}

func ItemToStateParams(item *reservation.Item) sqlc.UpdateReservationItemStateParams {
	return sqlc.UpdateReservationItemStateParams{
		ID:         item.ID(),
		Status:     item.Status().String(),
		IssuedAt:   pgconv.TimePtrToPgtype(item.IssuedAt()),
		ReturnedAt: pgconv.TimePtrToPgtype(item.ReturnedAt()),
	}
}

// ReservationFromRows rebuilds the aggregate from its row and item rows.
func ReservationFromRows(row sqlc.Reservations, itemRows []sqlc.ReservationItems) (*reservation.Reservation, error) {
	date := pgconv.DateFromPgtype(row.ReservedDate)
	slot, err := reservation.NewTimeSlot(
		date,
		pgconv.ClockTimeFromPgtype(row.StartTime, date),
		pgconv.ClockTimeFromPgtype(row.EndTime, date),
	)
	if err != nil {
		return nil, err
	}

	purpose, err := reservation.NewPurpose(row.Purpose)
	if err != nil {
		return nil, err
	}

	noteStr := ""
	if row.Note.Valid {
		noteStr = row.Note.String
	}
	note, err := reservation.NewNote(noteStr)
	if err != nil {
		return nil, err
	}

	items := make([]*reservation.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		items = append(items, reservation.ReconstructItem(
			ir.ID,
			ir.EquipmentID,
			int(ir.Quantity),
			reservation.ItemStatus(ir.Status),
			pgconv.TimePtrFromPgtype(ir.IssuedAt),
			pgconv.TimePtrFromPgtype(ir.ReturnedAt),
		))
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.Code,
		slot,
		purpose,
		note,
		reservation.Status(row.Status),
		items,
		pgconv.StringPtrFromPgtype(row.AdminNote),
		pgconv.TimePtrFromPgtype(row.ApprovedAt), row.ApprovedBy,
		pgconv.TimePtrFromPgtype(row.IssuedAt), row.IssuedBy,
		pgconv.TimePtrFromPgtype(row.ReturnRequestedAt),
		pgconv.TimePtrFromPgtype(row.ReturnedAt), row.ReturnedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
