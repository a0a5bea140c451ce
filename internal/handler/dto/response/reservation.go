package response

import (
	"time"

	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationItemResponse struct {
	ID                uuid.UUID  `json:"id"`
	EquipmentID       uuid.UUID  `json:"equipmentId"`
	EquipmentName     string     `json:"equipmentName"`
	EquipmentCategory string     `json:"equipmentCategory"`
	Quantity          int32      `json:"quantity"`
	Status            string     `json:"status"`
	IssuedAt          *time.Time `json:"issuedAt,omitempty"`
	ReturnedAt        *time.Time `json:"returnedAt,omitempty"`
}

type ReservationResponse struct {
	ID                uuid.UUID                 `json:"id"`
	Code              string                    `json:"code"`
	UserID            uuid.UUID                 `json:"userId"`
	UserEmail         string                    `json:"userEmail"`
	UserName          string                    `json:"userName"`
	Date              string                    `json:"date"`
	StartTime         string                    `json:"startTime"`
	EndTime           string                    `json:"endTime"`
	Purpose           string                    `json:"purpose"`
	Note              *string                   `json:"note,omitempty"`
	AdminNote         *string                   `json:"adminNote,omitempty"`
	Status            string                    `json:"status"`
	Items             []ReservationItemResponse `json:"items"`
	ApprovedAt        *time.Time                `json:"approvedAt,omitempty"`
	IssuedAt          *time.Time                `json:"issuedAt,omitempty"`
	ReturnRequestedAt *time.Time                `json:"returnRequestedAt,omitempty"`
	ReturnedAt        *time.Time                `json:"returnedAt,omitempty"`
	CreatedAt         time.Time                 `json:"createdAt"`
	UpdatedAt         time.Time                 `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Purpose   string    `json:"purpose"`
	Status    string    `json:"status"`
	ItemCount int       `json:"itemCount"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	items := make([]ReservationItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = ReservationItemResponse{
			ID:                item.ID,
			EquipmentID:       item.EquipmentID,
			EquipmentName:     item.EquipmentName,
			EquipmentCategory: item.EquipmentCategory,
			Quantity:          item.Quantity,
			Status:            item.Status,
			IssuedAt:          item.IssuedAt,
			ReturnedAt:        item.ReturnedAt,
		}
	}
	return &ReservationResponse{
		ID:                view.ID,
		Code:              view.Code,
		UserID:            view.UserID,
		UserEmail:         view.UserEmail,
		UserName:          view.UserName,
		Date:              view.ReservedDate.Format("2006-01-02"),
		StartTime:         view.StartTime.Format("15:04"),
		EndTime:           view.EndTime.Format("15:04"),
		Purpose:           view.Purpose,
		Note:              view.Note,
		AdminNote:         view.AdminNote,
		Status:            view.Status,
		Items:             items,
		ApprovedAt:        view.ApprovedAt,
		IssuedAt:          view.IssuedAt,
		ReturnRequestedAt: view.ReturnRequestedAt,
		ReturnedAt:        view.ReturnedAt,
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
	}
}

func FromReservationListItem(view *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:        view.ID,
		Code:      view.Code,
		Date:      view.ReservedDate.Format("2006-01-02"),
		StartTime: view.StartTime.Format("15:04"),
		EndTime:   view.EndTime.Format("15:04"),
		Purpose:   view.Purpose,
		Status:    view.Status,
		ItemCount: view.ItemCount,
		UserEmail: view.UserEmail,
		UserName:  view.UserName,
		CreatedAt: view.CreatedAt,
	}
}

func FromReservationListItems(views []*queries.ReservationListItem) []*ReservationListResponse {
	out := make([]*ReservationListResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationListItem(v)
	}
	return out
}
