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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PartyService interface {
	AddParty(ctx context.Context, req *request.CreatePartyRequest) (*response.PartyResponse, error)
	GetParty(ctx context.Context, partyID string) (*response.PartyResponse, error)
	GetParties(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PartyResponse], error)
	UpdateParty(ctx context.Context, partyID string, req *request.UpdatePartyRequest) (*response.PartyResponse, error)
	DeleteParty(ctx context.Context, partyID string) error
}

type partyService struct {
	repo  *repository.Repository
	clock clock.Clock
	log   *zap.Logger
}

func NewPartyService(repo *repository.Repository, clk clock.Clock, log *zap.Logger) PartyService {
	return &partyService{
		repo:  repo,
		clock: clk,
		log:   log.With(zap.String("service", "party")),
	}
}

// AddParty schedules a screening. The hall must be free for the whole
// half-open [startTime, endTime) interval; a party ending exactly when
// another begins is allowed. The overlap check here is advisory, the
// database exclusion constraint is the final arbiter under concurrency.
func (s *partyService) AddParty(ctx context.Context, req *request.CreatePartyRequest) (*response.PartyResponse, error) {
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, apperror.Client("Invalid movie ID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, apperror.NotFound("Movie not found")
	}

	hall, err := s.repo.Hall.FindByID(ctx, req.HallID)
	if err != nil {
		return nil, fmt.Errorf("find hall: %w", err)
	}
	if hall == nil {
		return nil, apperror.NotFound("Hall not found")
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, apperror.Admin("Party end time must be after its start time")
	}

	busy, err := s.repo.Party.HasOverlap(ctx, req.HallID, req.StartTime, req.EndTime, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check hall availability: %w", err)
	}
	if busy {
		return nil, apperror.Admin("Hall is already booked during this time")
	}

	party := &entity.Party{
		Base:        entity.NewBase(),
		MovieID:     movieID,
		HallID:      req.HallID,
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		TicketPrice: req.TicketPrice,
	}

	if err := s.repo.Party.Create(ctx, party); err != nil {
		return nil, err
	}

	s.log.Info("Party scheduled",
		zap.String("party_id", party.ID.String()),
		zap.String("hall_id", party.HallID),
		zap.Time("start_time", party.StartTime),
	)

	resp := response.PartyToResponse(party, movie.Name)
	return &resp, nil
}

func (s *partyService) GetParty(ctx context.Context, partyID string) (*response.PartyResponse, error) {
	id, err := uuid.Parse(partyID)
	if err != nil {
		return nil, apperror.Client("Invalid party ID")
	}

	party, err := s.repo.Party.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find party: %w", err)
	}
	if party == nil {
		return nil, apperror.NotFound("Party not found")
	}

	movieName := s.movieName(ctx, party.MovieID)
	resp := response.PartyToResponse(party, movieName)
	return &resp, nil
}

func (s *partyService) GetParties(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PartyResponse], error) {
	parties, err := s.repo.Party.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}

	total, err := s.repo.Party.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count parties: %w", err)
	}

	names := make(map[uuid.UUID]string, len(parties))
	items := make([]response.PartyResponse, len(parties))
	for i, party := range parties {
		name, ok := names[party.MovieID]
		if !ok {
			name = s.movieName(ctx, party.MovieID)
			names[party.MovieID] = name
		}
		items[i] = response.PartyToResponse(party, name)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

// UpdateParty reschedules a screening. When the interval or hall changes
// the overlap check runs against all other parties, excluding the party
// being updated so it never conflicts with itself.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req *request.UpdatePartyRequest) (*response.PartyResponse, error) {
	id, err := uuid.Parse(partyID)
	if err != nil {
		return nil, apperror.Client("Invalid party ID")
	}

	party, err := s.repo.Party.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find party: %w", err)
	}
	if party == nil {
		return nil, apperror.NotFound("Party not found")
	}

	if req.MovieID != nil {
		movieID, err := uuid.Parse(*req.MovieID)
		if err != nil {
			return nil, apperror.Client("Invalid movie ID")
		}
		movie, err := s.repo.Movie.FindByID(ctx, movieID)
		if err != nil {
			return nil, fmt.Errorf("find movie: %w", err)
		}
		if movie == nil {
			return nil, apperror.NotFound("Movie not found")
		}
		party.MovieID = movieID
	}

	if req.HallID != nil {
		hall, err := s.repo.Hall.FindByID(ctx, *req.HallID)
		if err != nil {
			return nil, fmt.Errorf("find hall: %w", err)
		}
		if hall == nil {
			return nil, apperror.NotFound("Hall not found")
		}
		party.HallID = *req.HallID
	}

	if req.StartTime != nil {
		party.StartTime = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		party.EndTime = req.EndTime.UTC()
	}
	if req.TicketPrice != nil {
		party.TicketPrice = *req.TicketPrice
	}

	if !party.EndTime.After(party.StartTime) {
		return nil, apperror.Admin("Party end time must be after its start time")
	}

	busy, err := s.repo.Party.HasOverlap(ctx, party.HallID, party.StartTime, party.EndTime, party.ID)
	if err != nil {
		return nil, fmt.Errorf("check hall availability: %w", err)
	}
	if busy {
		return nil, apperror.Admin("Hall is already booked during this time")
	}

	party.UpdatedAt = s.clock.Now()
	if err := s.repo.Party.Update(ctx, party); err != nil {
		return nil, err
	}

	s.log.Info("Party rescheduled", zap.String("party_id", party.ID.String()))

	movieName := s.movieName(ctx, party.MovieID)
	resp := response.PartyToResponse(party, movieName)
	return &resp, nil
}

// DeleteParty refuses to remove a screening that already has reservations.
func (s *partyService) DeleteParty(ctx context.Context, partyID string) error {
	id, err := uuid.Parse(partyID)
	if err != nil {
		return apperror.Client("Invalid party ID")
	}

	reserved, err := s.repo.Reservation.CountByPartyID(ctx, id)
	if err != nil {
		return fmt.Errorf("count reservations: %w", err)
	}
	if reserved > 0 {
		return apperror.Admin("Cannot delete party with existing reservations")
	}

	if err := s.repo.Party.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Party deleted", zap.String("party_id", partyID))
	return nil
}

func (s *partyService) movieName(ctx context.Context, movieID uuid.UUID) string {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		s.log.Warn("Failed to resolve movie name", zap.String("movie_id", movieID.String()), zap.Error(err))
		return ""
	}
	return movie.Name
}
