package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type EquipmentSnapshot struct {
	ID            uuid.UUID
	Name          string
	Status        string
	TotalQuantity int
}

type ReservationSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Code         string
	Status       string
	ReservedDate time.Time
}
