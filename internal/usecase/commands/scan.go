package commands

import (
	"context"

	"campus-reserve/internal/domain/reservation"
	"campus-reserve/internal/domain/user"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/pkg/qrtoken"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidQRToken    = errs.New("invalid qr token")
	ErrScanNotActionable = errs.New("reservation not actionable")
	ErrTokenUnavailable  = errs.New("qr token unavailable")
)

// Scan actions reported back to the counter UI.
const (
	ScanActionIssued           = "issued"
	ScanActionReturned         = "returned"
	ScanActionAlreadyCompleted = "already_completed"
)

type ScanResult struct {
	Action      string
	Reservation *queries.ReservationView
}

// ScanCommands drives the pickup/return counter. A staff member scans the
// student's QR code and the reservation advances to whatever comes next:
// issue on pickup, return on drop-off.
type ScanCommands interface {
	Scan(ctx context.Context, req reqdto.ScanRequest, staffID uuid.UUID) (*ScanResult, error)
	// MintToken renders the signed QR payload for a reservation. Students
	// mint only their own tokens.
	MintToken(ctx context.Context, actorID uuid.UUID, actorRole user.Role, reservationID uuid.UUID) ([]byte, error)
}

type scanCommandsImpl struct {
	transitionDeps
	issuer *qrtoken.Issuer
}

func NewScanCommands(
	uow shared.UnitOfWork,
	resQuery queries.ReservationQueries,
	publisher EventPublisher,
	stats StatsInvalidator,
	issuer *qrtoken.Issuer,
	clock clock.Clock,
) ScanCommands {
	return &scanCommandsImpl{
		transitionDeps: transitionDeps{
			uow:       uow,
			resQuery:  resQuery,
			publisher: publisher,
			stats:     stats,
			clock:     clock,
		},
		issuer: issuer,
	}
}

func (s *scanCommandsImpl) Scan(ctx context.Context, req reqdto.ScanRequest, staffID uuid.UUID) (*ScanResult, error) {
	code, err := s.issuer.Decode([]byte(req.Data))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQRToken)
	}

	var changed *reservation.Reservation
	var action string
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByCodeForUpdate(ctx, tx.DB(), code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		action, err = s.advance(res, staffID)
		if err != nil {
			return err
		}
		changed = res
		if action == ScanActionAlreadyCompleted {
			return nil
		}

		if err := tx.Reservations().SaveState(ctx, tx.DB(), res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		topic := NotifyItemsIssued
		if action == ScanActionReturned {
			topic = NotifyItemsReturned
		}
		return stageNotification(ctx, tx, topic, res, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	if action != ScanActionAlreadyCompleted {
		afterCommit(ctx, s.publisher, s.stats, changed, s.clock.Now())
	}

	view, err := s.resQuery.GetByIDSystem(ctx, changed.ID())
	if err != nil {
		return nil, err
	}
	return &ScanResult{Action: action, Reservation: view}, nil
}

// advance applies the next counter step implied by the current status. A
// pending reservation scanned at the counter is approved and issued in one
// step; staff presence at pickup stands in for the explicit approval.
func (s *scanCommandsImpl) advance(res *reservation.Reservation, staffID uuid.UUID) (string, error) {
	now := s.clock.Now()

	switch res.Status() {
	case reservation.StatusPending:
		if err := res.Approve(staffID, now); err != nil {
			return "", err
		}
		if _, err := res.IssueItems(staffID, nil, now); err != nil {
			return "", err
		}
		return ScanActionIssued, nil

	case reservation.StatusApproved:
		if _, err := res.IssueItems(staffID, nil, now); err != nil {
			return "", err
		}
		return ScanActionIssued, nil

	case reservation.StatusIssued, reservation.StatusReturnRequested:
		if _, err := res.ReturnItems(staffID, nil, now); err != nil {
			return "", err
		}
		return ScanActionReturned, nil

	case reservation.StatusCompleted:
		// Everything already came back; report it without touching state.
		return ScanActionAlreadyCompleted, nil

	default:
		return "", ErrScanNotActionable
	}
}

func (s *scanCommandsImpl) MintToken(ctx context.Context, actorID uuid.UUID, actorRole user.Role, reservationID uuid.UUID) ([]byte, error) {
	view, err := s.resQuery.GetByID(ctx, actorID, actorRole, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status(view.Status).IsTerminal() {
		return nil, ErrTokenUnavailable
	}
	return s.issuer.MintJSON(view.Code)
}
