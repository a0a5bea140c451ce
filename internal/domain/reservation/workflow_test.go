//go:build unit

package reservation_test

import (
	"testing"

	"campus-reserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending: {
			reservation.StatusApproved,
			reservation.StatusRejected,
			reservation.StatusCancelled,
			reservation.StatusIssued,
		},
		reservation.StatusApproved: {
			reservation.StatusIssued,
			reservation.StatusCancelled,
		},
		reservation.StatusIssued: {
			reservation.StatusReturnRequested,
			reservation.StatusCompleted,
		},
		reservation.StatusReturnRequested: {
			reservation.StatusCompleted,
		},
	}

	all := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusApproved,
		reservation.StatusRejected,
		reservation.StatusIssued,
		reservation.StatusReturnRequested,
		reservation.StatusCompleted,
		reservation.StatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
					break
				}
			}
			assert.Equal(t, want, reservation.CanTransition(from, to),
				"%s -> %s", from, to)
		}
	}

	t.Run("terminal statuses have no exits", func(t *testing.T) {
		for _, terminal := range []reservation.Status{
			reservation.StatusRejected,
			reservation.StatusCompleted,
			reservation.StatusCancelled,
		} {
			assert.True(t, terminal.IsTerminal())
			for _, to := range all {
				assert.False(t, reservation.CanTransition(terminal, to))
			}
		}
	})
}
