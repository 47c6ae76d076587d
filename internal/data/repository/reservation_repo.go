package repository

import (
	"context"
	"fmt"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"
	"github.com/Saleh-enab/Cinema-API/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	// Create inserts the reservation. The unique (party_id, seat_id)
	// constraint serializes concurrent identical requests: exactly one
	// insert succeeds, the rest get the same "already reserved" error the
	// early check produces.
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByPartyAndSeat(ctx context.Context, partyID uuid.UUID, seatID string) (*entity.Reservation, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Reservation, error)
	FindReservedSeatIDsByParty(ctx context.Context, partyID uuid.UUID) ([]string, error)
	CountByPartyID(ctx context.Context, partyID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, customer_id, party_id, seat_id, created_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(
		&res.ID,
		&res.CustomerID,
		&res.PartyID,
		&res.SeatID,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, customer_id, party_id, seat_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.CustomerID,
		reservation.PartyID,
		reservation.SeatID,
		reservation.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Client("Seat is already reserved for this party")
		}
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("party_id", reservation.PartyID.String()),
			zap.String("seat_id", reservation.SeatID),
		)
		return fmt.Errorf("create reservation for party %s seat %s: %w",
			reservation.PartyID.String(), reservation.SeatID, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByPartyAndSeat(ctx context.Context, partyID uuid.UUID, seatID string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE party_id = $1 AND seat_id = $2`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, partyID, seatID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by party and seat",
			zap.Error(err),
			zap.String("party_id", partyID.String()),
			zap.String("seat_id", seatID),
		)
		return nil, fmt.Errorf("find reservation for party %s seat %s: %w", partyID.String(), seatID, err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE customer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find reservations by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find reservations by customer ID %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) FindReservedSeatIDsByParty(ctx context.Context, partyID uuid.UUID) ([]string, error) {
	query := `SELECT seat_id FROM reservations WHERE party_id = $1`

	rows, err := r.db.Query(ctx, query, partyID)
	if err != nil {
		r.log.Error("Failed to find reserved seats by party",
			zap.Error(err),
			zap.String("party_id", partyID.String()),
		)
		return nil, fmt.Errorf("find reserved seats for party %s: %w", partyID.String(), err)
	}
	defer rows.Close()

	var seatIDs []string
	for rows.Next() {
		var seatID string
		if err := rows.Scan(&seatID); err != nil {
			r.log.Error("Failed to scan seat ID row", zap.Error(err))
			return nil, fmt.Errorf("scan seat ID row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}

	return seatIDs, nil
}

func (r *reservationRepository) CountByPartyID(ctx context.Context, partyID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations WHERE party_id = $1`, partyID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count reservations",
			zap.Error(err),
			zap.String("party_id", partyID.String()),
		)
		return 0, fmt.Errorf("count reservations for party %s: %w", partyID.String(), err)
	}
	return total, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("Reservation not found")
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}
