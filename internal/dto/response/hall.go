package response

import (
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
)

type HallResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type SeatResponse struct {
	ID         string `json:"id"` // e.g. "H5 - A3"
	HallID     string `json:"hallId"`
	Row        string `json:"row"`
	SeatNumber int    `json:"seatNumber"`
}

type ProvisionSeatsResponse struct {
	HallID    string         `json:"hallId"`
	SeatCount int            `json:"seatCount"`
	Seats     []SeatResponse `json:"seats"`
}

func HallToResponse(hall *entity.Hall) HallResponse {
	return HallResponse{
		ID:        hall.ID,
		CreatedAt: hall.CreatedAt,
	}
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:         seat.ID,
		HallID:     seat.HallID,
		Row:        seat.Row,
		SeatNumber: seat.SeatNumber,
	}
}
