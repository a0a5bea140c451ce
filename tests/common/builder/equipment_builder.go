//go:build unit || e2e

package builder

import (
	"time"

	"campus-reserve/internal/domain/equipment"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

type EquipmentBuilder struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Category      string
	Status        string
	TotalQuantity int32
	Location      string
}

func NewEquipmentBuilder() *EquipmentBuilder {
	return &EquipmentBuilder{
		ID:            uuid.New(),
		Name:          "Oscilloscope",
		Description:   "Dual channel 100MHz oscilloscope",
		Category:      "lab",
		Status:        "available",
		TotalQuantity: 3,
		Location:      "Storage B-2",
	}
}

func (b *EquipmentBuilder) With(mutate func(*EquipmentBuilder)) *EquipmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EquipmentBuilder) BuildDomain() (*equipment.Equipment, error) {
	return equipment.NewEquipment(b.Name, b.Description, b.Category, int(b.TotalQuantity), b.Location)
}

func (b *EquipmentBuilder) BuildInfra() sqlc.Equipment {
	now := time.Now()
	return sqlc.Equipment{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		Category:      b.Category,
		Status:        b.Status,
		TotalQuantity: b.TotalQuantity,
		Location:      pgtype.Text{String: b.Location, Valid: b.Location != ""},
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *EquipmentBuilder) BuildView() *queries.EquipmentView {
	view := &queries.EquipmentView{}
	_ = copier.Copy(view, b)
	if b.Location != "" {
		loc := b.Location
		view.Location = &loc
	}
	view.CreatedAt = time.Now()
	view.UpdatedAt = view.CreatedAt
	return view
}

// Fluent builder methods
func (b *EquipmentBuilder) WithID(id uuid.UUID) *EquipmentBuilder {
	b.ID = id
	return b
}

func (b *EquipmentBuilder) WithName(name string) *EquipmentBuilder {
	b.Name = name
	return b
}

func (b *EquipmentBuilder) WithStatus(status string) *EquipmentBuilder {
	b.Status = status
	return b
}

func (b *EquipmentBuilder) WithQuantity(quantity int32) *EquipmentBuilder {
	b.TotalQuantity = quantity
	return b
}
