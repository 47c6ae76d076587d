package response

import (
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
)

type PartyResponse struct {
	ID          string    `json:"id"`
	MovieID     string    `json:"movieId"`
	MovieName   string    `json:"movieName,omitempty"`
	HallID      string    `json:"hallId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	TicketPrice float64   `json:"ticketPrice"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AvailableSeatsResponse lists the seats still free for one party. A seat
// is busy only for the party it is reserved under, not for the whole hall.
type AvailableSeatsResponse struct {
	PartyID        string         `json:"partyId"`
	Seats          []SeatResponse `json:"seats"`
	TotalCount     int            `json:"totalCount"`
	AvailableCount int            `json:"availableCount"`
}

func PartyToResponse(party *entity.Party, movieName string) PartyResponse {
	return PartyResponse{
		ID:          party.ID.String(),
		MovieID:     party.MovieID.String(),
		MovieName:   movieName,
		HallID:      party.HallID,
		StartTime:   party.StartTime,
		EndTime:     party.EndTime,
		TicketPrice: party.TicketPrice,
		CreatedAt:   party.CreatedAt,
	}
}
