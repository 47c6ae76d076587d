package request

type AddHallRequest struct {
	ID string `json:"id" validate:"required,min=1,max=10"`
}

type ProvisionSeatsRequest struct {
	Rows        []string `json:"rows" validate:"required,min=1,dive,len=1"`
	SeatsPerRow int      `json:"seatsPerRow" validate:"required,min=1,max=50"`
}
