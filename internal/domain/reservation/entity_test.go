//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"campus-reserve/internal/domain/reservation"
	"campus-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingReservation(t *testing.T, lineCount int) *reservation.Reservation {
	t.Helper()
	r, err := builder.NewReservationBuilder().AsMultiLine(lineCount).BuildDomain()
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func TestReservationApprove(t *testing.T) {
	staffID := uuid.New()
	now := builder.BuilderNow

	t.Run("pending reservation is approved", func(t *testing.T) {
		r := newPendingReservation(t, 1)

		err := r.Approve(staffID, now)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusApproved, r.Status())
		require.NotNil(t, r.ApprovedAt())
		assert.Equal(t, now, *r.ApprovedAt())
		require.NotNil(t, r.ApprovedBy())
		assert.Equal(t, staffID, *r.ApprovedBy())
	})

	t.Run("approve is not repeatable", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		require.NoError(t, r.Approve(staffID, now))

		err := r.Approve(staffID, now)

		require.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})
}

func TestReservationReject(t *testing.T) {
	staffID := uuid.New()
	now := builder.BuilderNow

	t.Run("pending reservation is rejected with reason", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		reason := "Equipment reserved for department event"

		err := r.Reject(staffID, &reason, now)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusRejected, r.Status())
		require.NotNil(t, r.AdminNote())
		assert.Equal(t, reason, *r.AdminNote())
	})

	t.Run("approved reservation cannot be rejected", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		require.NoError(t, r.Approve(staffID, now))

		err := r.Reject(staffID, nil, now)

		require.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})
}

func TestReservationIssueItems(t *testing.T) {
	staffID := uuid.New()
	now := builder.BuilderNow

	t.Run("issuing every line advances the reservation", func(t *testing.T) {
		r := newPendingReservation(t, 2)
		require.NoError(t, r.Approve(staffID, now))

		count, err := r.IssueItems(staffID, nil, now)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, reservation.StatusIssued, r.Status())
		require.NotNil(t, r.IssuedAt())
		assert.Equal(t, staffID, *r.IssuedBy())
		for _, item := range r.Items() {
			assert.Equal(t, reservation.ItemStatusIssued, item.Status())
		}
	})

	t.Run("partial issue keeps the reservation approved", func(t *testing.T) {
		r := newPendingReservation(t, 2)
		require.NoError(t, r.Approve(staffID, now))
		first := r.Items()[0].ID()

		count, err := r.IssueItems(staffID, []uuid.UUID{first}, now)

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, reservation.StatusApproved, r.Status())
		assert.Nil(t, r.IssuedAt())
	})

	t.Run("already issued lines are skipped, not re-stamped", func(t *testing.T) {
		r := newPendingReservation(t, 2)
		require.NoError(t, r.Approve(staffID, now))
		first := r.Items()[0].ID()

		_, err := r.IssueItems(staffID, []uuid.UUID{first}, now)
		require.NoError(t, err)
		firstIssuedAt := *r.Items()[0].IssuedAt()

		later := now.Add(30 * time.Minute)
		count, err := r.IssueItems(staffID, nil, later)

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, firstIssuedAt, *r.Items()[0].IssuedAt())
		assert.Equal(t, reservation.StatusIssued, r.Status())
		assert.Equal(t, later, *r.IssuedAt())
	})

	t.Run("issuing from pending is refused", func(t *testing.T) {
		r := newPendingReservation(t, 1)

		_, err := r.IssueItems(staffID, nil, now)

		require.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})

	t.Run("unknown item id is refused before any mutation", func(t *testing.T) {
		r := newPendingReservation(t, 2)
		require.NoError(t, r.Approve(staffID, now))

		_, err := r.IssueItems(staffID, []uuid.UUID{uuid.New()}, now)

		require.ErrorIs(t, err, reservation.ErrItemNotInReservation)
		for _, item := range r.Items() {
			assert.Equal(t, reservation.ItemStatusPending, item.Status())
		}
	})
}

func TestReservationRequestReturn(t *testing.T) {
	staffID := uuid.New()
	now := builder.BuilderNow

	t.Run("owner requests return of issued reservation", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		require.NoError(t, r.Approve(staffID, now))
		_, err := r.IssueItems(staffID, nil, now)
		require.NoError(t, err)

		err = r.RequestReturn(r.UserID(), now)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusReturnRequested, r.Status())
		require.NotNil(t, r.ReturnRequestedAt())
	})

	t.Run("non-owner cannot request return", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		require.NoError(t, r.Approve(staffID, now))
		_, err := r.IssueItems(staffID, nil, now)
		require.NoError(t, err)

		err = r.RequestReturn(uuid.New(), now)

		require.ErrorIs(t, err, reservation.ErrNotOwner)
	})

	t.Run("return cannot be requested before issue", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		require.NoError(t, r.Approve(staffID, now))

		err := r.RequestReturn(r.UserID(), now)

		require.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})
}

func TestReservationReturnItems(t *testing.T) {
	staffID := uuid.New()
	now := builder.BuilderNow

	issuedReservation := func(t *testing.T, lineCount int) *reservation.Reservation {
		t.Helper()
		r := newPendingReservation(t, lineCount)
		require.NoError(t, r.Approve(staffID, now))
		_, err := r.IssueItems(staffID, nil, now)
		require.NoError(t, err)
		return r
	}

	t.Run("returning every line completes the reservation", func(t *testing.T) {
		r := issuedReservation(t, 2)

		count, err := r.ReturnItems(staffID, nil, now)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, reservation.StatusCompleted, r.Status())
		require.NotNil(t, r.ReturnedAt())
		assert.Equal(t, staffID, *r.ReturnedBy())
	})

	t.Run("partial return keeps the reservation issued", func(t *testing.T) {
		r := issuedReservation(t, 2)
		first := r.Items()[0].ID()

		count, err := r.ReturnItems(staffID, []uuid.UUID{first}, now)

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, reservation.StatusIssued, r.Status())
		assert.Nil(t, r.ReturnedAt())
	})

	t.Run("return settles a return_requested reservation", func(t *testing.T) {
		r := issuedReservation(t, 1)
		require.NoError(t, r.RequestReturn(r.UserID(), now))

		_, err := r.ReturnItems(staffID, nil, now)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCompleted, r.Status())
	})

	t.Run("return before issue is refused", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		require.NoError(t, r.Approve(staffID, now))

		_, err := r.ReturnItems(staffID, nil, now)

		require.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})
}

func TestReservationMarkItemCondition(t *testing.T) {
	staffID := uuid.New()
	now := builder.BuilderNow

	t.Run("writing off the last open line completes the reservation", func(t *testing.T) {
		r := newPendingReservation(t, 2)
		require.NoError(t, r.Approve(staffID, now))
		_, err := r.IssueItems(staffID, nil, now)
		require.NoError(t, err)
		_, err = r.ReturnItems(staffID, []uuid.UUID{r.Items()[0].ID()}, now)
		require.NoError(t, err)

		err = r.MarkItemCondition(staffID, r.Items()[1].ID(), reservation.ItemStatusDamaged, now)

		require.NoError(t, err)
		assert.Equal(t, reservation.ItemStatusDamaged, r.Items()[1].Status())
		assert.Equal(t, reservation.StatusCompleted, r.Status())
	})

	t.Run("only issued lines can be written off", func(t *testing.T) {
		r := newPendingReservation(t, 2)
		require.NoError(t, r.Approve(staffID, now))
		_, err := r.IssueItems(staffID, nil, now)
		require.NoError(t, err)
		_, err = r.ReturnItems(staffID, []uuid.UUID{r.Items()[0].ID()}, now)
		require.NoError(t, err)

		err = r.MarkItemCondition(staffID, r.Items()[0].ID(), reservation.ItemStatusDamaged, now)

		require.ErrorIs(t, err, reservation.ErrItemNotIssued)
	})

	t.Run("completed reservation refuses condition changes", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		require.NoError(t, r.Approve(staffID, now))
		_, err := r.IssueItems(staffID, nil, now)
		require.NoError(t, err)
		_, err = r.ReturnItems(staffID, nil, now)
		require.NoError(t, err)

		err = r.MarkItemCondition(staffID, r.Items()[0].ID(), reservation.ItemStatusLost, now)

		require.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})
}

func TestReservationCancel(t *testing.T) {
	staffID := uuid.New()
	now := builder.BuilderNow

	t.Run("owner cancels a pending reservation", func(t *testing.T) {
		r := newPendingReservation(t, 1)

		err := r.Cancel(r.UserID(), now)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("owner cancels an approved reservation", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		require.NoError(t, r.Approve(staffID, now))

		err := r.Cancel(r.UserID(), now)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("non-owner cannot cancel", func(t *testing.T) {
		r := newPendingReservation(t, 1)

		err := r.Cancel(uuid.New(), now)

		require.ErrorIs(t, err, reservation.ErrNotOwner)
	})

	t.Run("issued reservation cannot be cancelled", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		require.NoError(t, r.Approve(staffID, now))
		_, err := r.IssueItems(staffID, nil, now)
		require.NoError(t, err)

		err = r.Cancel(r.UserID(), now)

		require.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})

	t.Run("cancel after the reservation date is refused", func(t *testing.T) {
		r := newPendingReservation(t, 1)
		afterDate := r.Slot().Date().AddDate(0, 0, 1)

		err := r.Cancel(r.UserID(), afterDate)

		require.ErrorIs(t, err, reservation.ErrCancelWindowPassed)
	})
}
