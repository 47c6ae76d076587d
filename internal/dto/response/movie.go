package response

import (
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Year        int       `json:"year"`
	Rate        float64   `json:"rate"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Name:        movie.Name,
		Genre:       movie.Genre,
		Description: movie.Description,
		Duration:    movie.Duration,
		Year:        movie.Year,
		Rate:        movie.Rate,
		Image:       movie.Image,
		CreatedAt:   movie.CreatedAt,
	}
}
