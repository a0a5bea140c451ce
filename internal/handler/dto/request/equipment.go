package request

import "github.com/google/uuid"

type CreateEquipmentRequest struct {
	Name          string  `json:"name" binding:"required,max=255"`
	Description   string  `json:"description" binding:"max=2000"`
	Category      string  `json:"category" binding:"required,max=100"`
	TotalQuantity int     `json:"total_quantity" binding:"required,min=1"`
	Location      *string `json:"location,omitempty" binding:"omitempty,max=255"`
}

type UpdateEquipmentRequest struct {
	Name          string  `json:"name" binding:"required,max=255"`
	Description   string  `json:"description" binding:"max=2000"`
	Category      string  `json:"category" binding:"required,max=100"`
	Status        string  `json:"status" binding:"required,oneof=available unavailable maintenance"`
	TotalQuantity int     `json:"total_quantity" binding:"required,min=1"`
	Location      *string `json:"location,omitempty" binding:"omitempty,max=255"`
}

type UpdateEquipmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available unavailable maintenance"`
}

type AddCartItemRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1,max=10"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10"`
}

type CheckoutCartRequest struct {
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
	Purpose   string  `json:"purpose" binding:"required"`
	Note      *string `json:"note,omitempty"`
}
