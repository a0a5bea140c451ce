package commands

import (
	"context"

	"campus-reserve/internal/domain/equipment"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEquipmentInUse     = errs.New("equipment has active reservations")
	ErrDuplicateEquipment = errs.New("equipment already exists")
)

// EquipmentCommands is the admin write surface for the catalog.
type EquipmentCommands interface {
	Create(ctx context.Context, req reqdto.CreateEquipmentRequest) (*queries.EquipmentView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateEquipmentRequest) (*queries.EquipmentView, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateEquipmentStatusRequest) (*queries.EquipmentView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type equipmentCommandsImpl struct {
	uow     shared.UnitOfWork
	eqQuery queries.EquipmentQueries
	stats   StatsInvalidator
}

func NewEquipmentCommands(uow shared.UnitOfWork, eqQuery queries.EquipmentQueries, stats StatsInvalidator) EquipmentCommands {
	return &equipmentCommandsImpl{
		uow:     uow,
		eqQuery: eqQuery,
		stats:   stats,
	}
}

func (e *equipmentCommandsImpl) Create(ctx context.Context, req reqdto.CreateEquipmentRequest) (*queries.EquipmentView, error) {
	location := ""
	if req.Location != nil {
		location = *req.Location
	}
	eq, err := equipment.NewEquipment(req.Name, req.Description, req.Category, req.TotalQuantity, location)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Equipment().Create(ctx, tx.DB(), eq)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateEquipment
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.stats.Forget(ctx)
	return e.eqQuery.GetByID(ctx, id)
}

func (e *equipmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateEquipmentRequest) (*queries.EquipmentView, error) {
	status := equipment.Status(req.Status)
	if !status.IsValid() {
		return nil, ErrDomainValidation
	}
	location := ""
	if req.Location != nil {
		location = *req.Location
	}

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		eq, err := tx.Equipment().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEquipmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := eq.Update(req.Name, req.Description, req.Category, req.TotalQuantity, location); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := eq.ChangeStatus(status); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Equipment().Update(ctx, tx.DB(), eq); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.stats.Forget(ctx)
	return e.eqQuery.GetByID(ctx, id)
}

func (e *equipmentCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateEquipmentStatusRequest) (*queries.EquipmentView, error) {
	status := equipment.Status(req.Status)
	if !status.IsValid() {
		return nil, ErrDomainValidation
	}

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		eq, err := tx.Equipment().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEquipmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := eq.ChangeStatus(status); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Equipment().Update(ctx, tx.DB(), eq); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.stats.Forget(ctx)
	return e.eqQuery.GetByID(ctx, id)
}

// Delete removes a catalog entry. Equipment with open reservation lines
// stays; retiring it is what the maintenance status is for.
func (e *equipmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Equipment().FindByIDForUpdate(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEquipmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		active, err := tx.Equipment().CountActiveItems(ctx, tx.DB(), id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if active > 0 {
			return ErrEquipmentInUse
		}

		if err := tx.Equipment().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrEquipmentInUse
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.stats.Forget(ctx)
	return nil
}
