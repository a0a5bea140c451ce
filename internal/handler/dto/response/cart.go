package response

import (
	"campus-reserve/internal/infra/cart"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	EquipmentID uuid.UUID `json:"equipmentId"`
	Quantity    int       `json:"quantity"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
}

func FromCartLines(lines []cart.Line) *CartResponse {
	items := make([]CartLineResponse, len(lines))
	for i, line := range lines {
		items[i] = CartLineResponse{EquipmentID: line.EquipmentID, Quantity: line.Quantity}
	}
	return &CartResponse{Items: items}
}
