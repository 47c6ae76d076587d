package request

type CreateMovieRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Genre       string  `json:"genre" validate:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" validate:"required,min=1"`
	Year        int     `json:"year" validate:"required,min=1888"`
	Rate        float64 `json:"rate" validate:"min=0,max=10"`
	Image       *string `json:"image,omitempty"`
}

type UpdateMovieRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Genre       *string  `json:"genre,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,min=1"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,min=1888"`
	Rate        *float64 `json:"rate,omitempty" validate:"omitempty,min=0,max=10"`
	Image       *string  `json:"image,omitempty"`
}
