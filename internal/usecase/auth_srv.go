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
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dateOfBirthLayout is the wire format accepted on sign-up.
const dateOfBirthLayout = "02/01/2006"

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.CustomerResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	RefreshToken(ctx context.Context, req *request.RefreshTokenRequest) (*response.TokenResponse, error)
	Logout(ctx context.Context, customerID uuid.UUID) error
	VerifyEmail(ctx context.Context, customerID uuid.UUID, req *request.VerifyEmailRequest) error
	ResendOTP(ctx context.Context, customerID uuid.UUID) error
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	customers repository.CustomerRepository
	config    *utils.Config
	clock     clock.Clock
	publisher events.Publisher
	log       *zap.Logger
}

func NewAuthService(
	customers repository.CustomerRepository,
	config *utils.Config,
	clk clock.Clock,
	publisher events.Publisher,
	log *zap.Logger,
) AuthService {
	return &authService{
		customers: customers,
		config:    config,
		clock:     clk,
		publisher: publisher,
		log:       log.With(zap.String("service", "auth")),
	}
}

func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.CustomerResponse, error) {
	existing, err := s.customers.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing customer: %w", err)
	}
	if existing != nil {
		return nil, apperror.Client("A customer with this email already exists")
	}

	var dob *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, err := time.Parse(dateOfBirthLayout, *req.DateOfBirth)
		if err != nil {
			return nil, apperror.Client("Date of birth must be in DD/MM/YYYY format")
		}
		dob = &parsed
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.clock.Now()
	otp := utils.GenerateOTP(s.config.OTP.Length)
	otpExp := now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Email:         req.Email,
		DateOfBirth:   dob,
		Phone:         req.Phone,
		PasswordHash:  hash,
		Verified:      false,
		Role:          entity.RoleCustomer,
		OTP:           &otp,
		OTPExpiration: &otpExp,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.CustomerRegistered, map[string]any{
		"customerId": customer.ID.String(),
		"email":      customer.Email,
		"otp":        otp,
		"expiresAt":  otpExp.Format(time.RFC3339),
	})

	s.log.Info("Customer registered",
		zap.String("customer_id", customer.ID.String()),
		zap.String("email", customer.Email),
	)

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	customer, err := s.customers.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, apperror.Client("Invalid email or password")
	}

	if !utils.ComparePassword(customer.PasswordHash, req.Password) {
		s.log.Warn("Invalid password attempt", zap.String("email", req.Email))
		return nil, apperror.Client("Invalid email or password")
	}

	access, err := utils.NewAccessToken(
		s.config.JWT.Secret,
		customer.ID,
		customer.Email,
		string(customer.Role),
		s.config.JWT.AccessExpiryMin,
	)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err))
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := utils.NewRefreshToken(s.config.JWT.RefreshExpiryDays)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	tokenHash := utils.HashToken(refresh.Raw)
	customer.RefreshTokenHash = &tokenHash
	customer.UpdatedAt = s.clock.Now()
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	s.log.Info("Customer logged in", zap.String("customer_id", customer.ID.String()))

	return &response.LoginResponse{
		ValidUser:             true,
		AccessToken:           access.Token,
		RefreshToken:          refresh.Raw,
		AccessTokenExpiresAt:  access.Exp,
		RefreshTokenExpiresAt: refresh.Exp,
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, req *request.RefreshTokenRequest) (*response.TokenResponse, error) {
	customer, err := s.customers.FindByRefreshTokenHash(ctx, utils.HashToken(req.RefreshToken))
	if err != nil {
		return nil, fmt.Errorf("find customer by refresh token: %w", err)
	}
	if customer == nil {
		return nil, apperror.Client("Invalid refresh token")
	}

	access, err := utils.NewAccessToken(
		s.config.JWT.Secret,
		customer.ID,
		customer.Email,
		string(customer.Role),
		s.config.JWT.AccessExpiryMin,
	)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err))
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &response.TokenResponse{
		AccessToken:          access.Token,
		AccessTokenExpiresAt: access.Exp,
	}, nil
}

func (s *authService) Logout(ctx context.Context, customerID uuid.UUID) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return apperror.NotFound("Customer not found")
	}

	customer.RefreshTokenHash = nil
	customer.UpdatedAt = s.clock.Now()
	if err := s.customers.Update(ctx, customer); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}

	s.log.Info("Customer logged out", zap.String("customer_id", customerID.String()))
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, customerID uuid.UUID, req *request.VerifyEmailRequest) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return apperror.NotFound("Customer not found")
	}

	if customer.Verified {
		return apperror.Client("Email already verified")
	}
	if customer.OTP == nil || customer.OTPExpiration == nil {
		return apperror.Client("No pending verification code, request a new one")
	}
	if s.clock.Now().After(*customer.OTPExpiration) {
		return apperror.Client("Verification code has expired")
	}
	if *customer.OTP != req.OTP {
		return apperror.Client("Invalid verification code")
	}

	customer.Verified = true
	customer.OTP = nil
	customer.OTPExpiration = nil
	customer.UpdatedAt = s.clock.Now()
	if err := s.customers.Update(ctx, customer); err != nil {
		return fmt.Errorf("mark customer verified: %w", err)
	}

	s.log.Info("Email verified", zap.String("customer_id", customerID.String()))
	return nil
}

func (s *authService) ResendOTP(ctx context.Context, customerID uuid.UUID) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return apperror.NotFound("Customer not found")
	}
	if customer.Verified {
		return apperror.Client("Email already verified")
	}

	now := s.clock.Now()
	otp := utils.GenerateOTP(s.config.OTP.Length)
	otpExp := now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	customer.OTP = &otp
	customer.OTPExpiration = &otpExp
	customer.UpdatedAt = now
	if err := s.customers.Update(ctx, customer); err != nil {
		return fmt.Errorf("store new verification code: %w", err)
	}

	s.publisher.Publish(ctx, events.CustomerRegistered, map[string]any{
		"customerId": customer.ID.String(),
		"email":      customer.Email,
		"otp":        otp,
		"expiresAt":  otpExp.Format(time.RFC3339),
	})

	return nil
}

// ForgotPassword never reveals whether the email exists; unknown addresses
// are acknowledged the same way as known ones.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	customer, err := s.customers.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		s.log.Info("Password reset requested for unknown email", zap.String("email", req.Email))
		return nil
	}

	raw, err := utils.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	now := s.clock.Now()
	tokenHash := utils.HashToken(raw)
	resetExp := now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	customer.ResetTokenHash = &tokenHash
	customer.ResetExpiration = &resetExp
	customer.UpdatedAt = now
	if err := s.customers.Update(ctx, customer); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	s.publisher.Publish(ctx, events.CustomerPasswordReset, map[string]any{
		"customerId": customer.ID.String(),
		"email":      customer.Email,
		"token":      raw,
		"expiresAt":  resetExp.Format(time.RFC3339),
	})

	s.log.Info("Password reset token issued", zap.String("customer_id", customer.ID.String()))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	ok, err := s.customers.ResetPassword(ctx, req.Email, utils.HashToken(req.PasswordToken), hash, s.clock.Now())
	if err != nil {
		return err
	}
	if !ok {
		return apperror.Client("Invalid or expired reset token")
	}

	s.log.Info("Password reset completed", zap.String("email", req.Email))
	return nil
}
