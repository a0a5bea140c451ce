package api

import (
	"errors"
	"net/http"

	"campus-reserve/internal/domain/reservation"
	"campus-reserve/internal/handler/middleware"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps command and query failures onto HTTP statuses. Every
// handler funnels its non-validation errors through here so the mapping
// stays in one place.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound),
		errors.Is(err, queries.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})

	case errors.Is(err, commands.ErrEquipmentNotFound),
		errors.Is(err, queries.ErrEquipmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})

	case errors.Is(err, commands.ErrItemNotInCart),
		errors.Is(err, reservation.ErrItemNotInReservation):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})

	case errors.Is(err, reservation.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Reservation belongs to another user"})

	case errors.Is(err, commands.ErrQuantityConflict),
		errors.Is(err, commands.ErrEquipmentUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Equipment is not available for the requested slot"})

	case errors.Is(err, reservation.ErrIllegalTransition),
		errors.Is(err, reservation.ErrItemNotIssued),
		errors.Is(err, reservation.ErrItemAlreadyClosed),
		errors.Is(err, commands.ErrScanNotActionable),
		errors.Is(err, commands.ErrTokenUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Reservation state does not allow this action"})

	case errors.Is(err, reservation.ErrCancelWindowPassed):
		c.JSON(http.StatusConflict, gin.H{"error": "Reservation date has already passed"})

	case errors.Is(err, commands.ErrEquipmentInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Equipment has active reservations"})

	case errors.Is(err, commands.ErrDuplicateEquipment):
		c.JSON(http.StatusConflict, gin.H{"error": "Equipment already exists"})

	case errors.Is(err, commands.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})

	case errors.Is(err, commands.ErrCartFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Cart has too many lines"})

	case errors.Is(err, commands.ErrQuantityTooHigh):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Requested quantity exceeds stock"})

	case errors.Is(err, commands.ErrInvalidQRToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid QR payload"})

	case errors.Is(err, commands.ErrDomainValidation),
		errors.Is(err, commands.ErrInvalidItemCondition),
		errors.Is(err, queries.ErrInvalidWindow):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed: " + err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requireUserID pulls the authenticated user from the context set by the
// auth middleware.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	id, found := middleware.GetUserID(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

// parseIDParam parses a UUID path parameter or writes a 400.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
