package request

import "time"

type CreatePartyRequest struct {
	MovieID     string    `json:"movieId" validate:"required,uuid4"`
	HallID      string    `json:"hallId" validate:"required"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	TicketPrice float64   `json:"ticketPrice" validate:"required,gt=0"`
}

type UpdatePartyRequest struct {
	MovieID     *string    `json:"movieId,omitempty" validate:"omitempty,uuid4"`
	HallID      *string    `json:"hallId,omitempty"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	TicketPrice *float64   `json:"ticketPrice,omitempty" validate:"omitempty,gt=0"`
}
