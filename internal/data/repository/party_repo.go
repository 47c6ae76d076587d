package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"
	"github.com/Saleh-enab/Cinema-API/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PartyRepository interface {
	Create(ctx context.Context, party *entity.Party) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Party, error)
	Count(ctx context.Context) (int64, error)
	// HasOverlap reports whether any party in the hall collides with the
	// half-open interval [startTime, endTime). Pass uuid.Nil as excludeID
	// on creation; pass the party's own id on update, since its old
	// interval is being replaced.
	HasOverlap(ctx context.Context, hallID string, startTime, endTime time.Time, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, party *entity.Party) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type partyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPartyRepository(db database.PgxIface, log *zap.Logger) PartyRepository {
	return &partyRepository{
		db:  db,
		log: log.With(zap.String("repository", "party")),
	}
}

const partyColumns = `id, movie_id, hall_id, start_time, end_time, ticket_price, created_at, updated_at`

func scanParty(row pgx.Row) (*entity.Party, error) {
	var p entity.Party
	err := row.Scan(
		&p.ID,
		&p.MovieID,
		&p.HallID,
		&p.StartTime,
		&p.EndTime,
		&p.TicketPrice,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *partyRepository) Create(ctx context.Context, party *entity.Party) error {
	query := `
		INSERT INTO parties (id, movie_id, hall_id, start_time, end_time, ticket_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		party.ID,
		party.MovieID,
		party.HallID,
		party.StartTime,
		party.EndTime,
		party.TicketPrice,
		party.CreatedAt,
		party.UpdatedAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return apperror.Admin("Hall is already booked during this time")
		}
		r.log.Error("Failed to create party",
			zap.Error(err),
			zap.String("movie_id", party.MovieID.String()),
			zap.String("hall_id", party.HallID),
			zap.Time("start_time", party.StartTime),
		)
		return fmt.Errorf("create party for movie %s hall %s: %w",
			party.MovieID.String(), party.HallID, err)
	}

	return nil
}

func (r *partyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE id = $1`

	party, err := scanParty(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find party by ID",
			zap.Error(err),
			zap.String("party_id", id.String()),
		)
		return nil, fmt.Errorf("find party by ID %s: %w", id.String(), err)
	}

	return party, nil
}

func (r *partyRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties ORDER BY start_time LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list parties", zap.Error(err))
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var parties []*entity.Party
	for rows.Next() {
		party, err := scanParty(rows)
		if err != nil {
			r.log.Error("Failed to scan party row", zap.Error(err))
			return nil, fmt.Errorf("scan party row: %w", err)
		}
		parties = append(parties, party)
	}

	return parties, nil
}

func (r *partyRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM parties`).Scan(&total); err != nil {
		r.log.Error("Failed to count parties", zap.Error(err))
		return 0, fmt.Errorf("count parties: %w", err)
	}
	return total, nil
}

func (r *partyRepository) HasOverlap(ctx context.Context, hallID string, startTime, endTime time.Time, excludeID uuid.UUID) (bool, error) {
	// Mirrors entity.Party.Overlaps: new start inside existing, new end
	// inside existing, or existing contained in the new interval.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM parties
			WHERE hall_id = $1
			  AND ($4::uuid IS NULL OR id <> $4)
			  AND (
				(start_time <= $2 AND end_time > $2)
				OR (start_time < $3 AND end_time >= $3)
				OR (start_time >= $2 AND end_time <= $3)
			  )
		)
	`

	var exclude any
	if excludeID != uuid.Nil {
		exclude = excludeID
	}

	var overlaps bool
	err := r.db.QueryRow(ctx, query, hallID, startTime, endTime, exclude).Scan(&overlaps)
	if err != nil {
		r.log.Error("Failed to check hall overlap",
			zap.Error(err),
			zap.String("hall_id", hallID),
			zap.Time("start_time", startTime),
			zap.Time("end_time", endTime),
		)
		return false, fmt.Errorf("check overlap for hall %s: %w", hallID, err)
	}

	return overlaps, nil
}

func (r *partyRepository) Update(ctx context.Context, party *entity.Party) error {
	query := `
		UPDATE parties
		SET movie_id = $2, hall_id = $3, start_time = $4, end_time = $5, ticket_price = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		party.ID,
		party.MovieID,
		party.HallID,
		party.StartTime,
		party.EndTime,
		party.TicketPrice,
		party.UpdatedAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return apperror.Admin("Hall is already booked during this time")
		}
		r.log.Error("Failed to update party",
			zap.Error(err),
			zap.String("party_id", party.ID.String()),
		)
		return fmt.Errorf("update party %s: %w", party.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("Party not found")
	}

	return nil
}

func (r *partyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.Admin("Cannot delete party with existing reservations")
		}
		r.log.Error("Failed to delete party",
			zap.Error(err),
			zap.String("party_id", id.String()),
		)
		return fmt.Errorf("delete party %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("Party not found")
	}

	r.log.Info("Party deleted", zap.String("party_id", id.String()))
	return nil
}
