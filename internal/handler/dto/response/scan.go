package response

import "campus-reserve/internal/usecase/commands"

type ScanResponse struct {
	Action      string               `json:"action"`
	Reservation *ReservationResponse `json:"reservation"`
}

func FromScanResult(result *commands.ScanResult) *ScanResponse {
	return &ScanResponse{
		Action:      result.Action,
		Reservation: FromReservationView(result.Reservation),
	}
}
