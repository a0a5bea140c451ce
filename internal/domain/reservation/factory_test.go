//go:build unit

package reservation_test

import (
	"strings"
	"testing"

	"campus-reserve/internal/domain/reservation"
	"campus-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factoryCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservationFactory(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Len(t, actual.Items(), 1)
		assert.Equal(t, reservation.ItemStatusPending, actual.Items()[0].Status())
		assert.Equal(t, "RES-7K2M9QXZ", actual.Code())
		assert.Nil(t, actual.ApprovedAt())
		assert.Nil(t, actual.IssuedAt())
	})

	t.Run("line validation", func(t *testing.T) {
		sharedID := uuid.New()
		runFactoryCases(t, []factoryCase{
			{
				name:   "no lines",
				mutate: func(b *builder.ReservationBuilder) { b.WithLines() },
				errIs:  reservation.ErrNoItems,
			},
			{
				name:   "maximum line count",
				mutate: func(b *builder.ReservationBuilder) { b.AsMultiLine(10) },
			},
			{
				name:   "too many lines",
				mutate: func(b *builder.ReservationBuilder) { b.AsMultiLine(11) },
				errIs:  reservation.ErrTooManyLines,
			},
			{
				name: "duplicate equipment line",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithLines(
						builder.ReservationLine{EquipmentID: sharedID, Quantity: 1},
						builder.ReservationLine{EquipmentID: sharedID, Quantity: 2},
					)
				},
				errIs: reservation.ErrDuplicateEquipmentLine,
			},
			{
				name: "zero quantity",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithLines(builder.ReservationLine{EquipmentID: uuid.New(), Quantity: 0})
				},
				errIs: reservation.ErrInvalidItemQuantity,
			},
			{
				name: "quantity above maximum",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithLines(builder.ReservationLine{EquipmentID: uuid.New(), Quantity: 11})
				},
				errIs: reservation.ErrInvalidItemQuantity,
			},
			{
				name: "maximum quantity",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithLines(builder.ReservationLine{EquipmentID: uuid.New(), Quantity: 10})
				},
			},
		})
	})

	t.Run("date validation", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name:   "same-day reservation",
				mutate: func(b *builder.ReservationBuilder) { b.WithDate(builder.BuilderNow) },
			},
			{
				name:   "date in the past",
				mutate: func(b *builder.ReservationBuilder) { b.WithDate(builder.BuilderNow.AddDate(0, 0, -1)) },
				errIs:  reservation.ErrDateInPast,
			},
		})
	})

	t.Run("purpose validation", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name:   "purpose below minimum length",
				mutate: func(b *builder.ReservationBuilder) { b.WithPurpose("too short") },
				errIs:  reservation.ErrPurposeTooShort,
			},
			{
				name:   "purpose at maximum length",
				mutate: func(b *builder.ReservationBuilder) { b.WithPurpose(strings.Repeat("a", 500)) },
			},
			{
				name:   "purpose above maximum length",
				mutate: func(b *builder.ReservationBuilder) { b.WithPurpose(strings.Repeat("a", 501)) },
				errIs:  reservation.ErrPurposeTooLong,
			},
		})
	})

	t.Run("note validation", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name:   "empty note is allowed",
				mutate: func(b *builder.ReservationBuilder) { b.WithNote("") },
			},
			{
				name:   "note above maximum length",
				mutate: func(b *builder.ReservationBuilder) { b.WithNote(strings.Repeat("n", 1001)) },
				errIs:  reservation.ErrNoteTooLong,
			},
		})
	})
}

func runFactoryCases(t *testing.T, cases []factoryCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
