package request

type CreateReservationRequest struct {
	PartyID string `json:"partyId" validate:"required,uuid4"`
	SeatID  string `json:"seatId" validate:"required"`
}
