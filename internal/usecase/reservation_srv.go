package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/internal/dto/request"
	"github.com/Saleh-enab/Cinema-API/internal/dto/response"
	"github.com/Saleh-enab/Cinema-API/internal/events"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"
	"github.com/Saleh-enab/Cinema-API/pkg/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// cancellationWindow is the blackout before a party's start time inside
// which a reservation can no longer be cancelled.
const cancellationWindow = 2 * time.Hour

type ReservationService interface {
	Reserve(ctx context.Context, customerID uuid.UUID, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	Cancel(ctx context.Context, customerID uuid.UUID, reservationID string) error
	GetCustomerReservations(ctx context.Context, customerID uuid.UUID) ([]response.ReservationResponse, error)
	// ListPartySeats returns the seats of the party's hall that are still
	// free for that specific party. A seat reserved for another party in
	// the same hall is not busy here.
	ListPartySeats(ctx context.Context, partyID string) (*response.AvailableSeatsResponse, error)
}

type reservationService struct {
	repo      *repository.Repository
	clock     clock.Clock
	publisher events.Publisher
	log       *zap.Logger
}

func NewReservationService(repo *repository.Repository, clk clock.Clock, publisher events.Publisher, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:      repo,
		clock:     clk,
		publisher: publisher,
		log:       log.With(zap.String("service", "reservation")),
	}
}

// Reserve books one seat for one party. Every precondition is checked in
// order and the first failure aborts without mutation. The duplicate-seat
// check is an early exit only; the unique (party_id, seat_id) constraint
// decides the winner under concurrent identical requests, so at most one
// insert ever lands.
func (s *reservationService) Reserve(ctx context.Context, customerID uuid.UUID, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	partyID, err := uuid.Parse(req.PartyID)
	if err != nil {
		return nil, apperror.Client("Invalid party ID")
	}

	party, err := s.repo.Party.FindByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("find party: %w", err)
	}
	if party == nil {
		return nil, apperror.NotFound("Party not found")
	}

	if !party.StartTime.After(s.clock.Now()) {
		return nil, apperror.Client("Cannot reserve a seat for a past or ongoing party")
	}

	seat, err := s.repo.Seat.FindByID(ctx, req.SeatID)
	if err != nil {
		return nil, fmt.Errorf("find seat: %w", err)
	}
	if seat == nil {
		return nil, apperror.NotFound("Seat not found")
	}

	if seat.HallID != party.HallID {
		return nil, apperror.Client("Seat does not belong to the party's hall")
	}

	existing, err := s.repo.Reservation.FindByPartyAndSeat(ctx, partyID, seat.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing reservation: %w", err)
	}
	if existing != nil {
		return nil, apperror.Client("Seat is already reserved for this party")
	}

	now := s.clock.Now()
	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		CustomerID: customerID,
		PartyID:    partyID,
		SeatID:     seat.ID,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		return nil, err
	}

	movieName := s.movieName(ctx, party.MovieID)

	s.publisher.Publish(ctx, events.ReservationCreated, map[string]any{
		"reservationId": reservation.ID.String(),
		"customerId":    customerID.String(),
		"partyId":       partyID.String(),
		"seatId":        seat.ID,
		"movieName":     movieName,
		"startTime":     party.StartTime.Format(time.RFC3339),
	})

	s.log.Info("Seat reserved",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("seat_id", seat.ID),
	)

	resp := response.ReservationToResponse(reservation, party, movieName)
	return &resp, nil
}

// Cancel deletes a reservation owned by the caller, refusing inside the
// two hour blackout before the party starts.
func (s *reservationService) Cancel(ctx context.Context, customerID uuid.UUID, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return apperror.Client("Invalid reservation ID")
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return apperror.NotFound("Reservation not found")
	}

	if reservation.CustomerID != customerID {
		return apperror.Forbidden("You may only cancel your own reservations")
	}

	party, err := s.repo.Party.FindByID(ctx, reservation.PartyID)
	if err != nil {
		return fmt.Errorf("find party: %w", err)
	}
	if party == nil {
		return fmt.Errorf("reservation %s references missing party %s", id, reservation.PartyID)
	}

	if party.StartTime.Sub(s.clock.Now()) < cancellationWindow {
		return apperror.Client("Reservations can only be cancelled up to 2 hours before the party starts")
	}

	if err := s.repo.Reservation.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.ReservationCancelled, map[string]any{
		"reservationId": id.String(),
		"customerId":    customerID.String(),
		"partyId":       reservation.PartyID.String(),
		"seatId":        reservation.SeatID,
	})

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", id.String()),
		zap.String("customer_id", customerID.String()),
	)

	return nil
}

func (s *reservationService) GetCustomerReservations(ctx context.Context, customerID uuid.UUID) ([]response.ReservationResponse, error) {
	reservations, err := s.repo.Reservation.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	parties := make(map[uuid.UUID]*entity.Party, len(reservations))
	names := make(map[uuid.UUID]string)

	items := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		party, ok := parties[reservation.PartyID]
		if !ok {
			party, err = s.repo.Party.FindByID(ctx, reservation.PartyID)
			if err != nil {
				return nil, fmt.Errorf("find party: %w", err)
			}
			parties[reservation.PartyID] = party
		}

		var movieName string
		if party != nil {
			name, ok := names[party.MovieID]
			if !ok {
				name = s.movieName(ctx, party.MovieID)
				names[party.MovieID] = name
			}
			movieName = name
		}

		items[i] = response.ReservationToResponse(reservation, party, movieName)
	}

	return items, nil
}

func (s *reservationService) ListPartySeats(ctx context.Context, partyID string) (*response.AvailableSeatsResponse, error) {
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

	seats, err := s.repo.Seat.FindByHallID(ctx, party.HallID)
	if err != nil {
		return nil, fmt.Errorf("list hall seats: %w", err)
	}

	reservedIDs, err := s.repo.Reservation.FindReservedSeatIDsByParty(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reserved seats: %w", err)
	}

	reserved := make(map[string]struct{}, len(reservedIDs))
	for _, seatID := range reservedIDs {
		reserved[seatID] = struct{}{}
	}

	available := make([]response.SeatResponse, 0, len(seats))
	for _, seat := range seats {
		if _, busy := reserved[seat.ID]; busy {
			continue
		}
		available = append(available, response.SeatToResponse(seat))
	}

	return &response.AvailableSeatsResponse{
		PartyID:        id.String(),
		Seats:          available,
		TotalCount:     len(seats),
		AvailableCount: len(available),
	}, nil
}

func (s *reservationService) movieName(ctx context.Context, movieID uuid.UUID) string {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		s.log.Warn("Failed to resolve movie name", zap.String("movie_id", movieID.String()), zap.Error(err))
		return ""
	}
	return movie.Name
}
