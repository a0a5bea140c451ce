package response

import (
	"time"

	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	TotalQuantity int32     `json:"totalQuantity"`
	Location      *string   `json:"location,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ConflictingSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	Quantity  int32  `json:"quantity"`
}

type AvailabilityResponse struct {
	EquipmentID   uuid.UUID                 `json:"equipmentId"`
	Date          string                    `json:"date"`
	StartTime     string                    `json:"startTime"`
	EndTime       string                    `json:"endTime"`
	TotalQuantity int64                     `json:"totalQuantity"`
	Reserved      int64                     `json:"reserved"`
	Available     int64                     `json:"available"`
	IsAvailable   bool                      `json:"isAvailable"`
	Conflicts     []ConflictingSlotResponse `json:"conflicts"`
}

func FromEquipmentView(view *queries.EquipmentView) *EquipmentResponse {
	return &EquipmentResponse{
		ID:            view.ID,
		Name:          view.Name,
		Description:   view.Description,
		Category:      view.Category,
		Status:        view.Status,
		TotalQuantity: view.TotalQuantity,
		Location:      view.Location,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}

func FromEquipmentViews(views []*queries.EquipmentView) []*EquipmentResponse {
	out := make([]*EquipmentResponse, len(views))
	for i, v := range views {
		out[i] = FromEquipmentView(v)
	}
	return out
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	conflicts := make([]ConflictingSlotResponse, len(view.Conflicts))
	for i, c := range view.Conflicts {
		conflicts[i] = ConflictingSlotResponse{
			StartTime: c.StartTime.Format("15:04"),
			EndTime:   c.EndTime.Format("15:04"),
			Status:    c.Status,
			Quantity:  c.Quantity,
		}
	}
	return &AvailabilityResponse{
		EquipmentID:   view.EquipmentID,
		Date:          view.ReservedDate.Format("2006-01-02"),
		StartTime:     view.StartTime.Format("15:04"),
		EndTime:       view.EndTime.Format("15:04"),
		TotalQuantity: view.TotalQuantity,
		Reserved:      view.Reserved,
		Available:     view.Available,
		IsAvailable:   view.Available > 0,
		Conflicts:     conflicts,
	}
}
