package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrIllegalTransition      = errors.New("transition not permitted from current status")
	ErrNotOwner               = errors.New("reservation belongs to another user")
	ErrItemNotInReservation   = errors.New("item does not belong to this reservation")
	ErrCancelWindowPassed     = errors.New("reservation date has passed")
	ErrNoItems                = errors.New("reservation requires at least one equipment line")
	ErrTooManyLines           = errors.New("reservation allows at most 10 equipment lines")
	ErrDuplicateEquipmentLine = errors.New("equipment listed twice; increase quantity instead")
)

// Reservation is the booking aggregate. It exclusively owns its Items and is
// the only place lifecycle transitions are applied.
type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	code      string
	slot      TimeSlot
	purpose   Purpose
	note      Note
	status    Status
	items     []*Item
	adminNote *string

	approvedAt        *time.Time
	approvedBy        *uuid.UUID
	issuedAt          *time.Time
	issuedBy          *uuid.UUID
	returnRequestedAt *time.Time
	returnedAt        *time.Time
	returnedBy        *uuid.UUID

	createdAt time.Time
	updatedAt time.Time
}

func newReservation(userID uuid.UUID, code string, slot TimeSlot, purpose Purpose, note Note, items []*Item) *Reservation {
	return &Reservation{
		id:      uuid.New(),
		userID:  userID,
		code:    code,
		slot:    slot,
		purpose: purpose,
		note:    note,
		status:  StatusPending,
		items:   items,
	}
}

func ReconstructReservation(
	id, userID uuid.UUID,
	code string,
	slot TimeSlot,
	purpose Purpose,
	note Note,
	status Status,
	items []*Item,
	adminNote *string,
	approvedAt *time.Time, approvedBy *uuid.UUID,
	issuedAt *time.Time, issuedBy *uuid.UUID,
	returnRequestedAt *time.Time,
	returnedAt *time.Time, returnedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                id,
		userID:            userID,
		code:              code,
		slot:              slot,
		purpose:           purpose,
		note:              note,
		status:            status,
		items:             items,
		adminNote:         adminNote,
		approvedAt:        approvedAt,
		approvedBy:        approvedBy,
		issuedAt:          issuedAt,
		issuedBy:          issuedBy,
		returnRequestedAt: returnRequestedAt,
		returnedAt:        returnedAt,
		returnedBy:        returnedBy,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) UserID() uuid.UUID             { return r.userID }
func (r *Reservation) Code() string                  { return r.code }
func (r *Reservation) Slot() TimeSlot                { return r.slot }
func (r *Reservation) Purpose() Purpose              { return r.purpose }
func (r *Reservation) Note() Note                    { return r.note }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) Items() []*Item                { return r.items }
func (r *Reservation) AdminNote() *string            { return r.adminNote }
func (r *Reservation) ApprovedAt() *time.Time        { return r.approvedAt }
func (r *Reservation) ApprovedBy() *uuid.UUID        { return r.approvedBy }
func (r *Reservation) IssuedAt() *time.Time          { return r.issuedAt }
func (r *Reservation) IssuedBy() *uuid.UUID          { return r.issuedBy }
func (r *Reservation) ReturnRequestedAt() *time.Time { return r.returnRequestedAt }
func (r *Reservation) ReturnedAt() *time.Time        { return r.returnedAt }
func (r *Reservation) ReturnedBy() *uuid.UUID        { return r.returnedBy }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }

// Approve moves a pending reservation to approved.
func (r *Reservation) Approve(staffID uuid.UUID, now time.Time) error {
	if r.status != StatusPending {
		return ErrIllegalTransition
	}
	r.status = StatusApproved
	r.approvedAt = &now
	r.approvedBy = &staffID
	return nil
}

// Reject terminally denies a pending reservation, optionally recording the
// reason as an admin note.
func (r *Reservation) Reject(staffID uuid.UUID, reason *string, now time.Time) error {
	if r.status != StatusPending {
		return ErrIllegalTransition
	}
	r.status = StatusRejected
	if reason != nil {
		r.adminNote = reason
	}
	_ = staffID // recorded by the caller in the audit trail
	return nil
}

// IssueItems marks the addressed lines issued. With no ids, every line is
// addressed. Already-issued lines are skipped, never re-stamped. The parent
// advances to issued only once every line is issued.
func (r *Reservation) IssueItems(staffID uuid.UUID, itemIDs []uuid.UUID, now time.Time) (int, error) {
	if r.status != StatusApproved {
		return 0, ErrIllegalTransition
	}

	targets, err := r.selectItems(itemIDs)
	if err != nil {
		return 0, err
	}
	// Validate before mutating so a bad id leaves the aggregate untouched.
	for _, it := range targets {
		if it.status.IsClosed() {
			return 0, ErrItemAlreadyClosed
		}
	}

	issued := 0
	for _, it := range targets {
		changed, issueErr := it.issue(now)
		if issueErr != nil {
			return issued, issueErr
		}
		if changed {
			issued++
		}
	}

	prev := r.status
	r.status = deriveStatus(r.status, r.items)
	if r.status == StatusIssued && prev != StatusIssued {
		r.issuedAt = &now
		r.issuedBy = &staffID
	}
	return issued, nil
}

// RequestReturn is the student-facing transition out of issued. Only the
// owner may request it.
func (r *Reservation) RequestReturn(byUserID uuid.UUID, now time.Time) error {
	if byUserID != r.userID {
		return ErrNotOwner
	}
	if r.status != StatusIssued {
		return ErrIllegalTransition
	}
	r.status = StatusReturnRequested
	r.returnRequestedAt = &now
	return nil
}

// ReturnItems settles the addressed lines. With no ids, every currently
// issued line is settled. The parent completes only once every line is
// closed.
func (r *Reservation) ReturnItems(staffID uuid.UUID, itemIDs []uuid.UUID, now time.Time) (int, error) {
	if r.status != StatusIssued && r.status != StatusReturnRequested {
		return 0, ErrIllegalTransition
	}

	var targets []*Item
	if len(itemIDs) == 0 {
		for _, it := range r.items {
			if it.status == ItemStatusIssued {
				targets = append(targets, it)
			}
		}
	} else {
		var err error
		targets, err = r.selectItems(itemIDs)
		if err != nil {
			return 0, err
		}
		for _, it := range targets {
			if it.status != ItemStatusIssued && it.status != ItemStatusReturned {
				return 0, ErrItemNotIssued
			}
		}
	}

	returned := 0
	for _, it := range targets {
		changed, retErr := it.markReturned(now)
		if retErr != nil {
			return returned, retErr
		}
		if changed {
			returned++
		}
	}

	prev := r.status
	r.status = deriveStatus(r.status, r.items)
	if r.status == StatusCompleted && prev != StatusCompleted {
		r.returnedAt = &now
		r.returnedBy = &staffID
	}
	return returned, nil
}

// MarkItemCondition writes an issued line off as damaged or lost. Closing
// the last open line completes the reservation.
func (r *Reservation) MarkItemCondition(staffID uuid.UUID, itemID uuid.UUID, status ItemStatus, now time.Time) error {
	if r.status != StatusIssued && r.status != StatusReturnRequested {
		return ErrIllegalTransition
	}
	item := r.findItem(itemID)
	if item == nil {
		return ErrItemNotInReservation
	}
	if err := item.markCondition(status, now); err != nil {
		return err
	}

	prev := r.status
	r.status = deriveStatus(r.status, r.items)
	if r.status == StatusCompleted && prev != StatusCompleted {
		r.returnedAt = &now
		r.returnedBy = &staffID
	}
	return nil
}

// Cancel withdraws an unstarted reservation. Only the owner may cancel, and
// only while the reservation date has not passed.
func (r *Reservation) Cancel(byUserID uuid.UUID, now time.Time) error {
	if byUserID != r.userID {
		return ErrNotOwner
	}
	if r.slot.Date().Before(truncateToDate(now)) {
		return ErrCancelWindowPassed
	}
	if r.status != StatusPending && r.status != StatusApproved {
		return ErrIllegalTransition
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) findItem(id uuid.UUID) *Item {
	for _, it := range r.items {
		if it.id == id {
			return it
		}
	}
	return nil
}

func (r *Reservation) selectItems(itemIDs []uuid.UUID) ([]*Item, error) {
	if len(itemIDs) == 0 {
		return r.items, nil
	}
	targets := make([]*Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		item := r.findItem(id)
		if item == nil {
			return nil, ErrItemNotInReservation
		}
		targets = append(targets, item)
	}
	return targets, nil
}
