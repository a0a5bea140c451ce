package commands

import (
	"context"
	"log/slog"

	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/infra/cart"
	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errs.New("cart is empty")
	ErrCartFull        = errs.New("cart has too many lines")
	ErrItemNotInCart   = errs.New("item not in cart")
	ErrQuantityTooHigh = errs.New("requested quantity exceeds stock")
)

// maxCartLines matches the reservation line limit; a cart that cannot
// check out is not worth keeping.
const maxCartLines = 10

// CartCommands manages the draft reservation a student assembles while
// browsing the catalog. Checkout turns the cart into a real reservation.
type CartCommands interface {
	Get(ctx context.Context, userID uuid.UUID) ([]cart.Line, error)
	// AddItem accumulates quantity onto an existing line, capped per line.
	AddItem(ctx context.Context, req reqdto.AddCartItemRequest, userID uuid.UUID) ([]cart.Line, error)
	UpdateItem(ctx context.Context, equipmentID uuid.UUID, req reqdto.UpdateCartItemRequest, userID uuid.UUID) ([]cart.Line, error)
	RemoveItem(ctx context.Context, equipmentID, userID uuid.UUID) ([]cart.Line, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	Checkout(ctx context.Context, req reqdto.CheckoutCartRequest, userID uuid.UUID) (*queries.ReservationView, error)
}

type cartCommandsImpl struct {
	store        CartStore
	equipment    queries.EquipmentQueries
	reservations ReservationCommands
}

func NewCartCommands(store CartStore, equipment queries.EquipmentQueries, reservations ReservationCommands) CartCommands {
	return &cartCommandsImpl{
		store:        store,
		equipment:    equipment,
		reservations: reservations,
	}
}

func (c *cartCommandsImpl) Get(ctx context.Context, userID uuid.UUID) ([]cart.Line, error) {
	return c.store.Load(ctx, userID)
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, req reqdto.AddCartItemRequest, userID uuid.UUID) ([]cart.Line, error) {
	lines, err := c.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := findLine(lines, req.EquipmentID)
	quantity := req.Quantity
	if idx >= 0 {
		quantity += lines[idx].Quantity
	} else if len(lines) >= maxCartLines {
		return nil, ErrCartFull
	}
	if quantity > maxCartLines {
		quantity = maxCartLines
	}

	if err := c.checkStock(ctx, req.EquipmentID, quantity); err != nil {
		return nil, err
	}

	if idx >= 0 {
		lines[idx].Quantity = quantity
	} else {
		lines = append(lines, cart.Line{EquipmentID: req.EquipmentID, Quantity: quantity})
	}
	if err := c.store.Save(ctx, userID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *cartCommandsImpl) UpdateItem(ctx context.Context, equipmentID uuid.UUID, req reqdto.UpdateCartItemRequest, userID uuid.UUID) ([]cart.Line, error) {
	lines, err := c.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := findLine(lines, equipmentID)
	if idx < 0 {
		return nil, ErrItemNotInCart
	}

	if err := c.checkStock(ctx, equipmentID, req.Quantity); err != nil {
		return nil, err
	}

	lines[idx].Quantity = req.Quantity
	if err := c.store.Save(ctx, userID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, equipmentID, userID uuid.UUID) ([]cart.Line, error) {
	lines, err := c.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := findLine(lines, equipmentID)
	if idx < 0 {
		return nil, ErrItemNotInCart
	}

	lines = append(lines[:idx], lines[idx+1:]...)
	if err := c.store.Save(ctx, userID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *cartCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return c.store.Clear(ctx, userID)
}

func (c *cartCommandsImpl) Checkout(ctx context.Context, req reqdto.CheckoutCartRequest, userID uuid.UUID) (*queries.ReservationView, error) {
	lines, err := c.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]reqdto.ReservationLineRequest, len(lines))
	for i, line := range lines {
		items[i] = reqdto.ReservationLineRequest{EquipmentID: line.EquipmentID, Quantity: line.Quantity}
	}

	view, err := c.reservations.Create(ctx, reqdto.CreateReservationRequest{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Purpose:   req.Purpose,
		Note:      req.Note,
		Items:     items,
	}, userID)
	if err != nil {
		return nil, err
	}

	// The reservation already exists; a stale cart is just cosmetic.
	if err := c.store.Clear(ctx, userID); err != nil {
		slog.Warn("failed to clear cart after checkout", "user_id", userID, "error", err.Error())
	}
	return view, nil
}

// checkStock verifies the equipment exists and holds at least the requested
// quantity overall. Slot-level availability is settled at checkout.
func (c *cartCommandsImpl) checkStock(ctx context.Context, equipmentID uuid.UUID, quantity int) error {
	eq, err := c.equipment.GetByID(ctx, equipmentID)
	if err != nil {
		return err
	}
	if quantity > int(eq.TotalQuantity) {
		return ErrQuantityTooHigh
	}
	return nil
}

func findLine(lines []cart.Line, equipmentID uuid.UUID) int {
	for i, line := range lines {
		if line.EquipmentID == equipmentID {
			return i
		}
	}
	return -1
}
