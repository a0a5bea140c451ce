package commands

import (
	"context"

	"campus-reserve/internal/domain/reservation"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidItemCondition = errs.New("invalid item condition")

// WorkflowCommands covers the staff side of the reservation lifecycle:
// approval decisions, counter issue and return, and write-offs.
type WorkflowCommands interface {
	Approve(ctx context.Context, reservationID, staffID uuid.UUID) (*queries.ReservationView, error)
	Reject(ctx context.Context, reservationID, staffID uuid.UUID, req reqdto.RejectReservationRequest) (*queries.ReservationView, error)
	Issue(ctx context.Context, reservationID, staffID uuid.UUID, req reqdto.IssueItemsRequest) (*queries.ReservationView, error)
	Return(ctx context.Context, reservationID, staffID uuid.UUID, req reqdto.ReturnItemsRequest) (*queries.ReservationView, error)
	MarkItemCondition(ctx context.Context, reservationID, itemID, staffID uuid.UUID, req reqdto.MarkItemConditionRequest) (*queries.ReservationView, error)
}

type workflowCommandsImpl struct {
	transitionDeps
}

func NewWorkflowCommands(
	uow shared.UnitOfWork,
	resQuery queries.ReservationQueries,
	publisher EventPublisher,
	stats StatsInvalidator,
	clock clock.Clock,
) WorkflowCommands {
	return &workflowCommandsImpl{
		transitionDeps: transitionDeps{
			uow:       uow,
			resQuery:  resQuery,
			publisher: publisher,
			stats:     stats,
			clock:     clock,
		},
	}
}

func (w *workflowCommandsImpl) Approve(ctx context.Context, reservationID, staffID uuid.UUID) (*queries.ReservationView, error) {
	return w.transition(ctx, reservationID, NotifyReservationApproved, func(res *reservation.Reservation) error {
		return res.Approve(staffID, w.clock.Now())
	})
}

func (w *workflowCommandsImpl) Reject(ctx context.Context, reservationID, staffID uuid.UUID, req reqdto.RejectReservationRequest) (*queries.ReservationView, error) {
	return w.transition(ctx, reservationID, NotifyReservationRejected, func(res *reservation.Reservation) error {
		return res.Reject(staffID, req.Reason, w.clock.Now())
	})
}

func (w *workflowCommandsImpl) Issue(ctx context.Context, reservationID, staffID uuid.UUID, req reqdto.IssueItemsRequest) (*queries.ReservationView, error) {
	return w.transition(ctx, reservationID, NotifyItemsIssued, func(res *reservation.Reservation) error {
		_, err := res.IssueItems(staffID, req.ItemIDs, w.clock.Now())
		return err
	})
}

func (w *workflowCommandsImpl) Return(ctx context.Context, reservationID, staffID uuid.UUID, req reqdto.ReturnItemsRequest) (*queries.ReservationView, error) {
	return w.transition(ctx, reservationID, NotifyItemsReturned, func(res *reservation.Reservation) error {
		_, err := res.ReturnItems(staffID, req.ItemIDs, w.clock.Now())
		return err
	})
}

func (w *workflowCommandsImpl) MarkItemCondition(ctx context.Context, reservationID, itemID, staffID uuid.UUID, req reqdto.MarkItemConditionRequest) (*queries.ReservationView, error) {
	status := reservation.ItemStatus(req.Condition)
	if status != reservation.ItemStatusDamaged && status != reservation.ItemStatusLost {
		return nil, ErrInvalidItemCondition
	}
	return w.transition(ctx, reservationID, NotifyItemsReturned, func(res *reservation.Reservation) error {
		return res.MarkItemCondition(staffID, itemID, status, w.clock.Now())
	})
}
