//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEquipmentViewRepo struct {
	lastAvailability *AvailabilityView
}

func (f *fakeEquipmentViewRepo) FindByID(_ context.Context, id uuid.UUID) (*EquipmentView, error) {
	return &EquipmentView{ID: id}, nil
}

func (f *fakeEquipmentViewRepo) List(_ context.Context, _, _ *string, _, _ int32) ([]*EquipmentView, error) {
	return nil, nil
}

func (f *fakeEquipmentViewRepo) Categories(_ context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeEquipmentViewRepo) Availability(_ context.Context, view *AvailabilityView) (*AvailabilityView, error) {
	f.lastAvailability = view
	view.TotalQuantity = 3
	view.Available = 3
	return view, nil
}

func TestEquipmentAvailability(t *testing.T) {
	equipmentID := uuid.New()
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	start := time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("threads the exclude filter through to the repo", func(t *testing.T) {
		repo := &fakeEquipmentViewRepo{}
		q := NewEquipmentQueries(repo)
		exclude := uuid.New()

		view, err := q.Availability(context.Background(), equipmentID, date, start, end, &exclude)

		require.NoError(t, err)
		require.NotNil(t, view)
		require.NotNil(t, repo.lastAvailability)
		require.NotNil(t, repo.lastAvailability.ExcludeReservationID)
		assert.Equal(t, exclude, *repo.lastAvailability.ExcludeReservationID)
	})

	t.Run("no exclude by default", func(t *testing.T) {
		repo := &fakeEquipmentViewRepo{}
		q := NewEquipmentQueries(repo)

		_, err := q.Availability(context.Background(), equipmentID, date, start, end, nil)

		require.NoError(t, err)
		require.NotNil(t, repo.lastAvailability)
		assert.Nil(t, repo.lastAvailability.ExcludeReservationID)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		repo := &fakeEquipmentViewRepo{}
		q := NewEquipmentQueries(repo)

		_, err := q.Availability(context.Background(), equipmentID, date, end, start, nil)

		require.ErrorIs(t, err, ErrInvalidWindow)
		assert.Nil(t, repo.lastAvailability)
	})
}
