package repository

import (
	"context"
	"fmt"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"
	"github.com/Saleh-enab/Cinema-API/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HallRepository interface {
	Create(ctx context.Context, hall *entity.Hall) error
	FindByID(ctx context.Context, id string) (*entity.Hall, error)
	FindAll(ctx context.Context) ([]*entity.Hall, error)
	Delete(ctx context.Context, id string) error
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

func (r *hallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	query := `INSERT INTO halls (id, created_at) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, hall.ID, hall.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Admin("A hall with this id already exists")
		}
		r.log.Error("Failed to create hall",
			zap.Error(err),
			zap.String("hall_id", hall.ID),
		)
		return fmt.Errorf("create hall %s: %w", hall.ID, err)
	}

	return nil
}

func (r *hallRepository) FindByID(ctx context.Context, id string) (*entity.Hall, error) {
	query := `SELECT id, created_at FROM halls WHERE id = $1`

	var hall entity.Hall
	err := r.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hall by ID",
			zap.Error(err),
			zap.String("hall_id", id),
		)
		return nil, fmt.Errorf("find hall by ID %s: %w", id, err)
	}

	return &hall, nil
}

func (r *hallRepository) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	query := `SELECT id, created_at FROM halls ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list halls", zap.Error(err))
		return nil, fmt.Errorf("list halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.Hall
	for rows.Next() {
		var hall entity.Hall
		if err := rows.Scan(&hall.ID, &hall.CreatedAt); err != nil {
			r.log.Error("Failed to scan hall row", zap.Error(err))
			return nil, fmt.Errorf("scan hall row: %w", err)
		}
		halls = append(halls, &hall)
	}

	return halls, nil
}

func (r *hallRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM halls WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.Client("Cannot delete a hall that still has seats or parties")
		}
		r.log.Error("Failed to delete hall",
			zap.Error(err),
			zap.String("hall_id", id),
		)
		return fmt.Errorf("delete hall %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("There is no hall matching this hall id")
	}

	r.log.Info("Hall deleted", zap.String("hall_id", id))
	return nil
}
