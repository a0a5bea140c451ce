package reservation

import (
	"github.com/google/uuid"

	"campus-reserve/internal/pkg/clock"
)

const maxLines = 10

// Line is one equipment request inside a new reservation.
type Line struct {
	EquipmentID uuid.UUID
	Quantity    int
}

// Factory builds pending reservations, validating the request against the
// current date so callers cannot book into the past.
type Factory struct {
	clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

func (f *Factory) New(userID uuid.UUID, code string, slot TimeSlot, purpose Purpose, note Note, lines []Line) (*Reservation, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	if len(lines) > maxLines {
		return nil, ErrTooManyLines
	}
	if err := slot.ValidateNotPast(f.clock.Now()); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(lines))
	items := make([]*Item, 0, len(lines))
	for _, line := range lines {
		if _, dup := seen[line.EquipmentID]; dup {
			return nil, ErrDuplicateEquipmentLine
		}
		seen[line.EquipmentID] = struct{}{}

		item, err := NewItem(line.EquipmentID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return newReservation(userID, code, slot, purpose, note, items), nil
}
