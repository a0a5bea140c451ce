package request

import (
	"strings"
	"time"

	"campus-reserve/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationLineRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1,max=10"`
}

type CreateReservationRequest struct {
	Date      string                   `json:"date" binding:"required"`
	StartTime string                   `json:"start_time" binding:"required"`
	EndTime   string                   `json:"end_time" binding:"required"`
	Purpose   string                   `json:"purpose" binding:"required"`
	Note      *string                  `json:"note,omitempty"`
	Items     []ReservationLineRequest `json:"items" binding:"required,min=1,max=10,dive"`
}

// ToDomain parses the wire fields into domain value objects and lines.
func (r CreateReservationRequest) ToDomain() (reservation.TimeSlot, reservation.Purpose, reservation.Note, []reservation.Line, error) {
	var zero reservation.TimeSlot

	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return zero, reservation.Purpose{}, reservation.Note{}, nil, reservation.ErrInvalidTimeSlot
	}
	start, err := time.Parse("15:04", r.StartTime)
	if err != nil {
		return zero, reservation.Purpose{}, reservation.Note{}, nil, reservation.ErrInvalidTimeSlot
	}
	end, err := time.Parse("15:04", r.EndTime)
	if err != nil {
		return zero, reservation.Purpose{}, reservation.Note{}, nil, reservation.ErrInvalidTimeSlot
	}

	slot, err := reservation.NewTimeSlot(date, start, end)
	if err != nil {
		return zero, reservation.Purpose{}, reservation.Note{}, nil, err
	}

	purpose, err := reservation.NewPurpose(strings.TrimSpace(r.Purpose))
	if err != nil {
		return zero, reservation.Purpose{}, reservation.Note{}, nil, err
	}

	noteStr := ""
	if r.Note != nil {
		noteStr = strings.TrimSpace(*r.Note)
	}
	note, err := reservation.NewNote(noteStr)
	if err != nil {
		return zero, reservation.Purpose{}, reservation.Note{}, nil, err
	}

	lines := make([]reservation.Line, len(r.Items))
	for i, item := range r.Items {
		lines[i] = reservation.Line{EquipmentID: item.EquipmentID, Quantity: item.Quantity}
	}

	return slot, purpose, note, lines, nil
}

type RejectReservationRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type IssueItemsRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids,omitempty"`
}

type ReturnItemsRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids,omitempty"`
}

type MarkItemConditionRequest struct {
	Condition string `json:"condition" binding:"required,oneof=damaged lost"`
}

type ScanRequest struct {
	Data string `json:"data" binding:"required"`
}
