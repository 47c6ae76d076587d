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

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindByRefreshTokenHash(ctx context.Context, tokenHash string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ResetPassword atomically rewrites the password when the hashed reset
	// token matches and has not expired. Returns false when no row matched.
	ResetPassword(ctx context.Context, email, tokenHash, newPasswordHash string, now time.Time) (bool, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = `id, name, email, date_of_birth, phone, password, verified, role, otp, otp_expiration, reset_password_token, reset_password_expiration, refresh_token_hash, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.DateOfBirth,
		&c.Phone,
		&c.PasswordHash,
		&c.Verified,
		&c.Role,
		&c.OTP,
		&c.OTPExpiration,
		&c.ResetTokenHash,
		&c.ResetExpiration,
		&c.RefreshTokenHash,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, date_of_birth, phone, password, verified, role, otp, otp_expiration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.DateOfBirth,
		customer.Phone,
		customer.PasswordHash,
		customer.Verified,
		customer.Role,
		customer.OTP,
		customer.OTPExpiration,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Client("A customer with this email already exists")
		}
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("email", customer.Email),
		)
		return fmt.Errorf("create customer %s: %w", customer.Email, err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find customer by email %s: %w", email, err)
	}

	return customer, nil
}

func (r *customerRepository) FindByRefreshTokenHash(ctx context.Context, tokenHash string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE refresh_token_hash = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, tokenHash))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by refresh token", zap.Error(err))
		return nil, fmt.Errorf("find customer by refresh token: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, date_of_birth = $4, phone = $5, password = $6, verified = $7, role = $8,
		    otp = $9, otp_expiration = $10, reset_password_token = $11, reset_password_expiration = $12,
		    refresh_token_hash = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.DateOfBirth,
		customer.Phone,
		customer.PasswordHash,
		customer.Verified,
		customer.Role,
		customer.OTP,
		customer.OTPExpiration,
		customer.ResetTokenHash,
		customer.ResetExpiration,
		customer.RefreshTokenHash,
		customer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return fmt.Errorf("update customer %s: %w", customer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("Customer not found")
	}

	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return fmt.Errorf("delete customer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("Customer not found")
	}

	r.log.Info("Customer deleted", zap.String("customer_id", id.String()))
	return nil
}

func (r *customerRepository) ResetPassword(ctx context.Context, email, tokenHash, newPasswordHash string, now time.Time) (bool, error) {
	query := `
		UPDATE customers
		SET password = $3, reset_password_token = NULL, reset_password_expiration = NULL, updated_at = $5
		WHERE email = $1 AND reset_password_token = $2 AND reset_password_expiration > $4
	`

	result, err := r.db.Exec(ctx, query, email, tokenHash, newPasswordHash, now, now)
	if err != nil {
		r.log.Error("Failed to reset password",
			zap.Error(err),
			zap.String("email", email),
		)
		return false, fmt.Errorf("reset password for %s: %w", email, err)
	}

	return result.RowsAffected() > 0, nil
}
