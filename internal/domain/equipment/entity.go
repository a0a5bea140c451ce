package equipment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("equipment name must not be empty")
	ErrInvalidQuantity = errors.New("total quantity must be at least 1")
	ErrInvalidStatus   = errors.New("invalid equipment status")
)

type Equipment struct {
	id            uuid.UUID
	name          string
	description   string
	category      string
	status        Status
	totalQuantity int
	location      string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewEquipment(name, description, category string, totalQuantity int, location string) (*Equipment, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if totalQuantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Equipment{
		id:            uuid.New(),
		name:          name,
		description:   description,
		category:      category,
		status:        StatusAvailable,
		totalQuantity: totalQuantity,
		location:      location,
	}, nil
}

func ReconstructEquipment(
	id uuid.UUID,
	name, description, category string,
	status Status,
	totalQuantity int,
	location string,
	createdAt, updatedAt time.Time,
) *Equipment {
	return &Equipment{
		id:            id,
		name:          name,
		description:   description,
		category:      category,
		status:        status,
		totalQuantity: totalQuantity,
		location:      location,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (e *Equipment) ID() uuid.UUID        { return e.id }
func (e *Equipment) Name() string         { return e.name }
func (e *Equipment) Description() string  { return e.description }
func (e *Equipment) Category() string     { return e.category }
func (e *Equipment) Status() Status       { return e.status }
func (e *Equipment) TotalQuantity() int   { return e.totalQuantity }
func (e *Equipment) Location() string     { return e.location }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }

// IsReservable reports whether new reservation lines may target this
// equipment. Scheduling conflicts are checked separately.
func (e *Equipment) IsReservable() bool {
	return e.status == StatusAvailable
}

func (e *Equipment) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	e.status = status
	return nil
}

func (e *Equipment) Update(name, description, category string, totalQuantity int, location string) error {
	if name == "" {
		return ErrEmptyName
	}
	if totalQuantity < 1 {
		return ErrInvalidQuantity
	}
	e.name = name
	e.description = description
	e.category = category
	e.totalQuantity = totalQuantity
	e.location = location
	return nil
}
