package commands

import (
	"bytes"
	"context"
	"slices"

	"campus-reserve/internal/domain/reservation"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/pkg/rescode"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEquipmentNotFound       = errs.New("equipment not found")
	ErrEquipmentUnavailable    = errs.New("equipment unavailable")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrQuantityConflict        = errs.New("insufficient equipment quantity")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrCodeGeneration          = errs.New("reservation code allocation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// codeAttempts bounds retries on reservation code collisions. With eight
// characters over a 36-symbol alphabet a collision is already vanishingly
// rare.
const codeAttempts = 5

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	RequestReturn(ctx context.Context, reservationID, userID uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, reservationID, userID uuid.UUID) (*queries.ReservationView, error)
}

// transitionDeps is the dependency set every lifecycle command needs:
// transaction scope, read-after-write, and post-commit fan-out.
type transitionDeps struct {
	uow       shared.UnitOfWork
	resQuery  queries.ReservationQueries
	publisher EventPublisher
	stats     StatsInvalidator
	clock     clock.Clock
}

type reservationCommandsImpl struct {
	transitionDeps
	factory *reservation.Factory
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	resQuery queries.ReservationQueries,
	publisher EventPublisher,
	stats StatsInvalidator,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		transitionDeps: transitionDeps{
			uow:       uow,
			resQuery:  resQuery,
			publisher: publisher,
			stats:     stats,
			clock:     clock,
		},
		factory: factory,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error) {
	slot, purpose, note, lines, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var created *reservation.Reservation
	var reservationID uuid.UUID
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := rescode.Generate()
		if err != nil {
			return nil, errs.Mark(err, ErrCodeGeneration)
		}

		res, err := r.factory.New(userID, code, slot, purpose, note, lines)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := r.checkAvailability(ctx, tx, slot, lines); err != nil {
				return err
			}
			id, err := tx.Reservations().Create(ctx, tx.DB(), res)
			if err != nil {
				return err
			}
			reservationID = id
			return stageNotification(ctx, tx, NotifyReservationCreated, res, r.clock.Now())
		})
		if err == nil {
			created = res
			break
		}
		// The factory rejects duplicate equipment lines, so the only unique
		// constraint that can trip here is the reservation code.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			continue
		}
		return nil, err
	}
	if created == nil {
		return nil, ErrCodeGeneration
	}

	afterCommit(ctx, r.publisher, r.stats, created, r.clock.Now())
	return r.resQuery.GetByIDSystem(ctx, reservationID)
}

// checkAvailability row-locks each requested equipment and verifies the
// remaining quantity in the slot. Locks are taken in equipment ID order so
// two concurrent multi-line reservations cannot deadlock each other.
func (r *reservationCommandsImpl) checkAvailability(ctx context.Context, tx shared.Tx, slot reservation.TimeSlot, lines []reservation.Line) error {
	ordered := slices.Clone(lines)
	slices.SortFunc(ordered, func(a, b reservation.Line) int {
		return bytes.Compare(a.EquipmentID[:], b.EquipmentID[:])
	})

	for _, line := range ordered {
		eq, err := tx.Equipment().FindByIDForUpdate(ctx, tx.DB(), line.EquipmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEquipmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !eq.IsReservable() {
			return ErrEquipmentUnavailable
		}

		reserved, err := tx.Equipment().SumOverlappingQuantity(ctx, tx.DB(), line.EquipmentID, slot)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if reserved+int64(line.Quantity) > int64(eq.TotalQuantity()) {
			return ErrQuantityConflict
		}
	}
	return nil
}

func (r *reservationCommandsImpl) RequestReturn(ctx context.Context, reservationID, userID uuid.UUID) (*queries.ReservationView, error) {
	return r.transition(ctx, reservationID, NotifyReturnRequested, func(res *reservation.Reservation) error {
		return res.RequestReturn(userID, r.clock.Now())
	})
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, userID uuid.UUID) (*queries.ReservationView, error) {
	return r.transition(ctx, reservationID, NotifyReservationCancelled, func(res *reservation.Reservation) error {
		return res.Cancel(userID, r.clock.Now())
	})
}

// transition loads the reservation under a row lock, applies one lifecycle
// mutation, persists the new state and stages the outbox jobs atomically.
// The staged payload carries the post-mutation status, so a topic like
// items_returned still tells the worker when the reservation completed.
func (d transitionDeps) transition(ctx context.Context, reservationID uuid.UUID, notifyTopic string, mutate func(res *reservation.Reservation) error) (*queries.ReservationView, error) {
	var changed *reservation.Reservation
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := mutate(res); err != nil {
			return err
		}
		if err := tx.Reservations().SaveState(ctx, tx.DB(), res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		changed = res
		return stageNotification(ctx, tx, notifyTopic, res, d.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	afterCommit(ctx, d.publisher, d.stats, changed, d.clock.Now())
	return d.resQuery.GetByIDSystem(ctx, reservationID)
}
