package response

import (
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
)

// ReservationResponse enriches the stored row with display fields computed
// at read time; none of them are persisted on the reservation.
type ReservationResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	PartyID     string    `json:"partyId"`
	SeatID      string    `json:"seatId"` // e.g. "H5 - A3"
	MovieName   string    `json:"movieName,omitempty"`
	HallID      string    `json:"hallId,omitempty"`
	StartTime   time.Time `json:"startTime,omitempty"`
	TicketPrice float64   `json:"ticketPrice,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ReservationToResponse(res *entity.Reservation, party *entity.Party, movieName string) ReservationResponse {
	resp := ReservationResponse{
		ID:         res.ID.String(),
		CustomerID: res.CustomerID.String(),
		PartyID:    res.PartyID.String(),
		SeatID:     res.SeatID,
		MovieName:  movieName,
		CreatedAt:  res.CreatedAt,
	}

	if party != nil {
		resp.HallID = party.HallID
		resp.StartTime = party.StartTime
		resp.TicketPrice = party.TicketPrice
	}

	return resp
}
