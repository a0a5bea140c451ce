package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Equipment errors
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrEquipmentUnavailable = errors.New("equipment unavailable")
	ErrEquipmentInUse       = errors.New("equipment referenced by active reservations")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("time slot conflict")
	ErrDuplicateLine       = errors.New("duplicate equipment line")
	ErrCodeCollision       = errors.New("reservation code collision")
	ErrIllegalTransition   = errors.New("transition not permitted from current status")
	ErrNotOwner            = errors.New("reservation belongs to another user")
	ErrItemNotFound        = errors.New("reservation item not found")

	// QR errors
	ErrInvalidSignature = errors.New("qr signature verification failed")
	ErrInvalidPayload   = errors.New("qr payload malformed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
