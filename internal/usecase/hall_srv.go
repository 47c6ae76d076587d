package usecase

import (
	"context"
	"fmt"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/internal/dto/request"
	"github.com/Saleh-enab/Cinema-API/internal/dto/response"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"
	"github.com/Saleh-enab/Cinema-API/pkg/clock"

	"go.uber.org/zap"
)

type HallService interface {
	AddHall(ctx context.Context, req *request.AddHallRequest) (*response.HallResponse, error)
	GetHalls(ctx context.Context) ([]response.HallResponse, error)
	DeleteHall(ctx context.Context, hallID string) error
	// ProvisionSeats creates the full seat grid for a hall in one shot.
	// A hall can be provisioned only once.
	ProvisionSeats(ctx context.Context, hallID string, req *request.ProvisionSeatsRequest) (*response.ProvisionSeatsResponse, error)
	GetSeats(ctx context.Context, hallID string) ([]response.SeatResponse, error)
}

type hallService struct {
	repo  *repository.Repository
	clock clock.Clock
	log   *zap.Logger
}

func NewHallService(repo *repository.Repository, clk clock.Clock, log *zap.Logger) HallService {
	return &hallService{
		repo:  repo,
		clock: clk,
		log:   log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) AddHall(ctx context.Context, req *request.AddHallRequest) (*response.HallResponse, error) {
	existing, err := s.repo.Hall.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("check hall: %w", err)
	}
	if existing != nil {
		return nil, apperror.Admin("A hall with this ID already exists")
	}

	hall := &entity.Hall{
		ID:        req.ID,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		return nil, err
	}

	s.log.Info("Hall added", zap.String("hall_id", hall.ID))

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) GetHalls(ctx context.Context) ([]response.HallResponse, error) {
	halls, err := s.repo.Hall.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list halls: %w", err)
	}

	items := make([]response.HallResponse, len(halls))
	for i, hall := range halls {
		items[i] = response.HallToResponse(hall)
	}

	return items, nil
}

func (s *hallService) DeleteHall(ctx context.Context, hallID string) error {
	if err := s.repo.Hall.Delete(ctx, hallID); err != nil {
		return err
	}

	s.log.Info("Hall deleted", zap.String("hall_id", hallID))
	return nil
}

func (s *hallService) ProvisionSeats(ctx context.Context, hallID string, req *request.ProvisionSeatsRequest) (*response.ProvisionSeatsResponse, error) {
	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("find hall: %w", err)
	}
	if hall == nil {
		return nil, apperror.NotFound("Hall not found")
	}

	existing, err := s.repo.Seat.CountByHallID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("count seats: %w", err)
	}
	if existing > 0 {
		return nil, apperror.Admin("Hall already has seats provisioned")
	}

	now := s.clock.Now()
	seats := make([]*entity.Seat, 0, len(req.Rows)*req.SeatsPerRow)
	for _, row := range req.Rows {
		for n := 1; n <= req.SeatsPerRow; n++ {
			seats = append(seats, &entity.Seat{
				ID:         entity.SeatID(hallID, row, n),
				HallID:     hallID,
				Row:        row,
				SeatNumber: n,
				CreatedAt:  now,
			})
		}
	}

	if err := s.repo.Seat.CreateBatch(ctx, seats); err != nil {
		return nil, err
	}

	s.log.Info("Seats provisioned",
		zap.String("hall_id", hallID),
		zap.Int("seat_count", len(seats)),
	)

	items := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		items[i] = response.SeatToResponse(seat)
	}

	return &response.ProvisionSeatsResponse{
		HallID:    hallID,
		SeatCount: len(seats),
		Seats:     items,
	}, nil
}

func (s *hallService) GetSeats(ctx context.Context, hallID string) ([]response.SeatResponse, error) {
	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("find hall: %w", err)
	}
	if hall == nil {
		return nil, apperror.NotFound("Hall not found")
	}

	seats, err := s.repo.Seat.FindByHallID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}

	items := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		items[i] = response.SeatToResponse(seat)
	}

	return items, nil
}
