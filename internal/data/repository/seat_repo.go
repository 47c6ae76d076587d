package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"
	"github.com/Saleh-enab/Cinema-API/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	// CreateBatch inserts all seats in one statement inside a transaction;
	// partial provisioning is never observable.
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindByID(ctx context.Context, id string) (*entity.Seat, error)
	FindByHallID(ctx context.Context, hallID string) ([]*entity.Seat, error)
	CountByHallID(ctx context.Context, hallID string) (int64, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seat batch: %w", err)
	}
	defer tx.Rollback(ctx)

	var sb strings.Builder
	sb.WriteString(`INSERT INTO seats (id, hall_id, "row", seat_number, created_at) VALUES `)
	args := make([]any, 0, len(seats)*5)
	for i, seat := range seats {
		if i > 0 {
			sb.WriteString(",")
		}
		base := i * 5
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, seat.ID, seat.HallID, seat.Row, seat.SeatNumber, seat.CreatedAt)
	}

	if _, err := tx.Exec(ctx, sb.String(), args...); err != nil {
		if isUniqueViolation(err) {
			return apperror.Client("Hall already has seats provisioned")
		}
		r.log.Error("Failed to create seat batch",
			zap.Error(err),
			zap.String("hall_id", seats[0].HallID),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("create %d seats for hall %s: %w", len(seats), seats[0].HallID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seat batch: %w", err)
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id string) (*entity.Seat, error) {
	query := `SELECT id, hall_id, "row", seat_number, created_at FROM seats WHERE id = $1`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.HallID,
		&seat.Row,
		&seat.SeatNumber,
		&seat.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id, err)
	}

	return &seat, nil
}

func (r *seatRepository) FindByHallID(ctx context.Context, hallID string) ([]*entity.Seat, error) {
	query := `
		SELECT id, hall_id, "row", seat_number, created_at
		FROM seats
		WHERE hall_id = $1
		ORDER BY "row", seat_number
	`

	rows, err := r.db.Query(ctx, query, hallID)
	if err != nil {
		r.log.Error("Failed to find seats by hall ID",
			zap.Error(err),
			zap.String("hall_id", hallID),
		)
		return nil, fmt.Errorf("find seats by hall ID %s: %w", hallID, err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.Row,
			&seat.SeatNumber,
			&seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, nil
}

func (r *seatRepository) CountByHallID(ctx context.Context, hallID string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM seats WHERE hall_id = $1`, hallID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count seats",
			zap.Error(err),
			zap.String("hall_id", hallID),
		)
		return 0, fmt.Errorf("count seats for hall %s: %w", hallID, err)
	}
	return total, nil
}
