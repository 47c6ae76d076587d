package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/internal/dto/request"
	"github.com/Saleh-enab/Cinema-API/internal/dto/response"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	AddMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) AddMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	existing, err := s.repo.Movie.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check movie name: %w", err)
	}
	if existing != nil {
		return nil, apperror.Admin("A movie with this name already exists")
	}

	movie := &entity.Movie{
		Base:        entity.NewBase(),
		Name:        req.Name,
		Genre:       req.Genre,
		Description: req.Description,
		Duration:    req.Duration,
		Year:        req.Year,
		Rate:        req.Rate,
		Image:       req.Image,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie added",
		zap.String("movie_id", movie.ID.String()),
		zap.String("name", movie.Name),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperror.Client("Invalid movie ID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, apperror.NotFound("Movie not found")
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	total, err := s.repo.Movie.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	items := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		items[i] = response.MovieToResponse(movie)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperror.Client("Invalid movie ID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, apperror.NotFound("Movie not found")
	}

	if req.Name != nil {
		movie.Name = *req.Name
	}
	if req.Genre != nil {
		movie.Genre = *req.Genre
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Duration != nil {
		movie.Duration = *req.Duration
	}
	if req.Year != nil {
		movie.Year = *req.Year
	}
	if req.Rate != nil {
		movie.Rate = *req.Rate
	}
	if req.Image != nil {
		movie.Image = req.Image
	}
	movie.UpdatedAt = time.Now().UTC()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie updated", zap.String("movie_id", movie.ID.String()))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return apperror.Client("Invalid movie ID")
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}
