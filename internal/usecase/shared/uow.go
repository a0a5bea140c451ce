package shared

import (
	"context"
	"time"

	"campus-reserve/internal/domain/equipment"
	"campus-reserve/internal/domain/reservation"
	sqlc "campus-reserve/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Equipment() EquipmentRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	EquipmentByID(ctx context.Context, id uuid.UUID) (*EquipmentSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// FindByIDForUpdate row-locks the reservation so concurrent transitions
	// serialize per reservation.
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, code string) (*reservation.Reservation, error)
	// SaveState persists the aggregate's status, audit stamps and item states
	// after a lifecycle transition.
	SaveState(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, eq *equipment.Equipment) (uuid.UUID, error)
	// FindByIDForUpdate row-locks the equipment so concurrent availability
	// checks against the same unit serialize.
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*equipment.Equipment, error)
	Update(ctx context.Context, tx sqlc.DBTX, eq *equipment.Equipment) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	CountActiveItems(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error)
	// SumOverlappingQuantity totals the quantities already promised to other
	// reservations whose slot overlaps the given one.
	SumOverlappingQuantity(ctx context.Context, tx sqlc.DBTX, equipmentID uuid.UUID, slot reservation.TimeSlot) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
