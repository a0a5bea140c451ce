package queries

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserView struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     string
	IsActive bool
}

type ReservationItemView struct {
	ID                uuid.UUID
	EquipmentID       uuid.UUID
	EquipmentName     string
	EquipmentCategory string
	Quantity          int32
	Status            string
	IssuedAt          *time.Time
	ReturnedAt        *time.Time
}

type ReservationView struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	UserEmail         string
	UserName          string
	Code              string
	ReservedDate      time.Time
	StartTime         time.Time
	EndTime           time.Time
	Purpose           string
	Note              *string
	AdminNote         *string
	Status            string
	Items             []ReservationItemView
	ApprovedAt        *time.Time
	ApprovedBy        *uuid.UUID
	IssuedAt          *time.Time
	IssuedBy          *uuid.UUID
	ReturnRequestedAt *time.Time
	ReturnedAt        *time.Time
	ReturnedBy        *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ReservationListItem struct {
	ID           uuid.UUID
	Code         string
	ReservedDate time.Time
	StartTime    time.Time
	EndTime      time.Time
	Purpose      string
	Status       string
	ItemCount    int
	UserEmail    string
	UserName     string
	CreatedAt    time.Time
}

type EquipmentView struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Category      string
	Status        string
	TotalQuantity int32
	Location      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AvailabilityView reports how many units of one equipment remain free in a
// given window, plus the reservations that eat into the remainder.
type AvailabilityView struct {
	EquipmentID  uuid.UUID
	ReservedDate time.Time
	StartTime    time.Time
	EndTime      time.Time
	// ExcludeReservationID drops one reservation from the overlap math, so
	// an edit flow can ask whether its own slot would still fit.
	ExcludeReservationID *uuid.UUID
	TotalQuantity        int64
	Reserved             int64
	Available            int64
	Conflicts            []ConflictingSlotView
}

type ConflictingSlotView struct {
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Quantity  int32
}

type TopEquipmentView struct {
	EquipmentID      uuid.UUID
	Name             string
	Category         string
	ReservationCount int64
}

type StatisticsView struct {
	ByStatus         map[string]int64
	CreatedToday     int64
	CreatedThisWeek  int64
	CreatedThisMonth int64
	TopEquipment     []TopEquipmentView
	GeneratedAt      time.Time
}

type NotificationJobView struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int32
	Status    string
	LastError *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
