package response

import (
	"time"

	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type TopEquipmentResponse struct {
	EquipmentID      uuid.UUID `json:"equipmentId"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ReservationCount int64     `json:"reservationCount"`
}

type StatisticsResponse struct {
	ByStatus         map[string]int64       `json:"byStatus"`
	CreatedToday     int64                  `json:"createdToday"`
	CreatedThisWeek  int64                  `json:"createdThisWeek"`
	CreatedThisMonth int64                  `json:"createdThisMonth"`
	TopEquipment     []TopEquipmentResponse `json:"topEquipment"`
	GeneratedAt      time.Time              `json:"generatedAt"`
}

func FromStatisticsView(view *queries.StatisticsView) *StatisticsResponse {
	top := make([]TopEquipmentResponse, len(view.TopEquipment))
	for i, t := range view.TopEquipment {
		top[i] = TopEquipmentResponse{
			EquipmentID:      t.EquipmentID,
			Name:             t.Name,
			Category:         t.Category,
			ReservationCount: t.ReservationCount,
		}
	}
	return &StatisticsResponse{
		ByStatus:         view.ByStatus,
		CreatedToday:     view.CreatedToday,
		CreatedThisWeek:  view.CreatedThisWeek,
		CreatedThisMonth: view.CreatedThisMonth,
		TopEquipment:     top,
		GeneratedAt:      view.GeneratedAt,
	}
}
