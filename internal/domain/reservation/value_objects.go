package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeSlot = errors.New("end time must be after start time")
	ErrDateInPast      = errors.New("reservation date must be today or later")
	ErrPurposeTooShort = errors.New("purpose must be at least 10 characters")
	ErrPurposeTooLong  = errors.New("purpose must be at most 500 characters")
	ErrNoteTooLong     = errors.New("notes must be at most 1000 characters")
)

// TimeSlot is the half-open window [start, end) on a single reservation date.
type TimeSlot struct {
	date  time.Time
	start time.Time
	end   time.Time
}

// NewTimeSlot composes a slot from a calendar date and two clock times.
// The date components of start/end are ignored; only time-of-day is kept.
func NewTimeSlot(date, start, end time.Time) (TimeSlot, error) {
	d := truncateToDate(date)
	s := onDate(d, start)
	e := onDate(d, end)
	if !s.Before(e) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{date: d, start: s, end: e}, nil
}

func (ts TimeSlot) Date() time.Time  { return ts.date }
func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps applies the half-open interval test: [s1,e1) and [s2,e2) conflict
// iff s1 < e2 && s2 < e1. Slots that touch at a boundary do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	if !ts.date.Equal(other.date) {
		return false
	}
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// ValidateNotPast rejects slots whose date is before today.
func (ts TimeSlot) ValidateNotPast(now time.Time) error {
	today := truncateToDate(now)
	if ts.date.Before(today) {
		return ErrDateInPast
	}
	return nil
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s",
		ts.date.Format("2006-01-02"),
		ts.start.Format("15:04"),
		ts.end.Format("15:04"),
	)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func onDate(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, date.Location())
}

type Purpose struct {
	value string
}

func NewPurpose(value string) (Purpose, error) {
	if len(value) < 10 {
		return Purpose{}, ErrPurposeTooShort
	}
	if len(value) > 500 {
		return Purpose{}, ErrPurposeTooLong
	}
	return Purpose{value: value}, nil
}

func (p Purpose) String() string {
	return p.value
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	if len(value) > 1000 {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
