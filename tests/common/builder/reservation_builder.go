//go:build unit || e2e

package builder

import (
	"time"

	domres "campus-reserve/internal/domain/reservation"
	"campus-reserve/internal/pkg/clock"

	"github.com/google/uuid"
)

// Fixed reference time so slot validation is deterministic in tests.
var BuilderNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type ReservationLine struct {
	EquipmentID uuid.UUID
	Quantity    int
}

type ReservationBuilder struct {
	UserID    uuid.UUID
	UserEmail string
	Code      string
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	Purpose   string
	Note      string
	Lines     []ReservationLine
	Now       time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		UserID:    uuid.New(),
		UserEmail: "student@example.edu",
		Code:      "RES-7K2M9QXZ",
		Date:      BuilderNow.AddDate(0, 0, 2),
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC),
		Purpose:   "Physics laboratory session",
		Note:      "",
		Lines: []ReservationLine{
			{EquipmentID: uuid.New(), Quantity: 1},
		},
		Now:       BuilderNow,
		CreatedAt: BuilderNow,
		UpdatedAt: BuilderNow,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	slot, err := domres.NewTimeSlot(b.Date, b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	purpose, err := domres.NewPurpose(b.Purpose)
	if err != nil {
		return nil, err
	}
	note, err := domres.NewNote(b.Note)
	if err != nil {
		return nil, err
	}

	lines := make([]domres.Line, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, domres.Line{EquipmentID: l.EquipmentID, Quantity: l.Quantity})
	}

	factory := domres.NewFactory(clock.NewMockClock(b.Now))
	return factory.New(b.UserID, b.Code, slot, purpose, note, lines)
}

// Fluent builder methods
func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithCode(code string) *ReservationBuilder {
	b.Code = code
	return b
}

func (b *ReservationBuilder) WithDate(date time.Time) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithTimes(start, end time.Time) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) WithPurpose(purpose string) *ReservationBuilder {
	b.Purpose = purpose
	return b
}

func (b *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	b.Note = note
	return b
}

func (b *ReservationBuilder) WithLines(lines ...ReservationLine) *ReservationBuilder {
	b.Lines = lines
	return b
}

func (b *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	b.Now = now
	return b
}

func (b *ReservationBuilder) AsMultiLine(count int) *ReservationBuilder {
	lines := make([]ReservationLine, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, ReservationLine{EquipmentID: uuid.New(), Quantity: 1})
	}
	b.Lines = lines
	return b
}
