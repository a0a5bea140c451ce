package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemQuantity = errors.New("item quantity must be between 1 and 10")
	ErrItemNotIssued       = errors.New("item is not currently issued")
	ErrItemAlreadyClosed   = errors.New("item is already settled")
	ErrInvalidItemStatus   = errors.New("invalid item status")
)

// Item is one equipment line inside a reservation. Its status is a sub-state
// of the parent lifecycle and never runs ahead of it.
type Item struct {
	id          uuid.UUID
	equipmentID uuid.UUID
	quantity    int
	status      ItemStatus
	issuedAt    *time.Time
	returnedAt  *time.Time
}

func NewItem(equipmentID uuid.UUID, quantity int) (*Item, error) {
	if quantity < 1 || quantity > 10 {
		return nil, ErrInvalidItemQuantity
	}
	return &Item{
		id:          uuid.New(),
		equipmentID: equipmentID,
		quantity:    quantity,
		status:      ItemStatusPending,
	}, nil
}

func ReconstructItem(
	id, equipmentID uuid.UUID,
	quantity int,
	status ItemStatus,
	issuedAt, returnedAt *time.Time,
) *Item {
	return &Item{
		id:          id,
		equipmentID: equipmentID,
		quantity:    quantity,
		status:      status,
		issuedAt:    issuedAt,
		returnedAt:  returnedAt,
	}
}

func (i *Item) ID() uuid.UUID          { return i.id }
func (i *Item) EquipmentID() uuid.UUID { return i.equipmentID }
func (i *Item) Quantity() int          { return i.quantity }
func (i *Item) Status() ItemStatus     { return i.status }
func (i *Item) IssuedAt() *time.Time   { return i.issuedAt }
func (i *Item) ReturnedAt() *time.Time { return i.returnedAt }

// issue hands the line out. Issuing an already-issued item is a no-op so a
// repeated issue call never re-stamps issued_at.
func (i *Item) issue(now time.Time) (changed bool, err error) {
	switch i.status {
	case ItemStatusIssued:
		return false, nil
	case ItemStatusPending:
		i.status = ItemStatusIssued
		i.issuedAt = &now
		return true, nil
	default:
		return false, ErrItemAlreadyClosed
	}
}

// markReturned settles an issued line. Non-issued lines are skipped by the
// default all-items path and rejected when addressed explicitly.
func (i *Item) markReturned(now time.Time) (changed bool, err error) {
	switch i.status {
	case ItemStatusIssued:
		i.status = ItemStatusReturned
		i.returnedAt = &now
		return true, nil
	case ItemStatusReturned:
		return false, nil
	default:
		return false, ErrItemNotIssued
	}
}

// markCondition writes an issued line off as damaged or lost.
func (i *Item) markCondition(status ItemStatus, now time.Time) error {
	if status != ItemStatusDamaged && status != ItemStatusLost {
		return ErrInvalidItemStatus
	}
	if i.status != ItemStatusIssued {
		return ErrItemNotIssued
	}
	i.status = status
	i.returnedAt = &now
	return nil
}
