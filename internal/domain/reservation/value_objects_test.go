//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"campus-reserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, date time.Time, startHour, endHour int) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(
		date,
		time.Date(0, 1, 1, startHour, 0, 0, 0, time.UTC),
		time.Date(0, 1, 1, endHour, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return slot
}

func TestTimeSlot(t *testing.T) {
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	otherDate := date.AddDate(0, 0, 1)

	t.Run("end must be after start", func(t *testing.T) {
		start := time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC)

		_, err := reservation.NewTimeSlot(date, start, start)
		require.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)

		_, err = reservation.NewTimeSlot(date, start, start.Add(-time.Hour))
		require.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("overlap detection", func(t *testing.T) {
		base := mustSlot(t, date, 9, 12)

		cases := []struct {
			name     string
			other    reservation.TimeSlot
			overlaps bool
		}{
			{"identical window", mustSlot(t, date, 9, 12), true},
			{"contained window", mustSlot(t, date, 10, 11), true},
			{"overlapping start", mustSlot(t, date, 8, 10), true},
			{"overlapping end", mustSlot(t, date, 11, 14), true},
			{"surrounding window", mustSlot(t, date, 8, 13), true},
			{"touching at end boundary", mustSlot(t, date, 12, 14), false},
			{"touching at start boundary", mustSlot(t, date, 7, 9), false},
			{"disjoint earlier", mustSlot(t, date, 6, 8), false},
			{"disjoint later", mustSlot(t, date, 13, 15), false},
			{"same window on another date", mustSlot(t, otherDate, 9, 12), false},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlaps, base.Overlaps(c.other))
				assert.Equal(t, c.overlaps, c.other.Overlaps(base))
			})
		}
	})

	t.Run("date components of clock times are ignored", func(t *testing.T) {
		start := time.Date(1999, 7, 1, 9, 30, 0, 0, time.UTC)
		end := time.Date(2030, 2, 2, 11, 0, 0, 0, time.UTC)

		slot, err := reservation.NewTimeSlot(date, start, end)

		require.NoError(t, err)
		assert.Equal(t, "2026-03-12 09:30-11:00", slot.String())
	})
}
