package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/internal/dto/request"
	"github.com/Saleh-enab/Cinema-API/internal/events"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"
	"github.com/Saleh-enab/Cinema-API/pkg/clock"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:            "test-secret",
			AccessExpiryMin:   15,
			RefreshExpiryDays: 7,
		},
		OTP: utils.OTPConfig{
			ExpiryMinutes: 10,
			Length:        6,
		},
	}
}

func newAuthFixture(t *testing.T) (AuthService, *repository.Repository, time.Time) {
	t.Helper()
	repo := newFakeRepository()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	svc := NewAuthService(repo.Customer, testConfig(), clock.NewFixed(now), events.NoopPublisher{}, testLogger())
	return svc, repo, now
}

func signUpRequest(email string) *request.SignUpRequest {
	return &request.SignUpRequest{
		Name:            "Saleh",
		Email:           email,
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	}
}

func TestSignUp(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.SignUp(ctx, signUpRequest("saleh@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "saleh@example.com", resp.Email)
	assert.Equal(t, entity.RoleCustomer, resp.Role)
	assert.False(t, resp.Verified)

	stored, err := repo.Customer.FindByEmail(ctx, "saleh@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	require.NotNil(t, stored.OTP)
	assert.Len(t, *stored.OTP, 6)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.SignUp(ctx, signUpRequest("saleh@example.com"))
		requireKind(t, err, apperror.KindClient)
	})

	t.Run("bad date of birth rejected", func(t *testing.T) {
		req := signUpRequest("other@example.com")
		dob := "1990-05-01"
		req.DateOfBirth = &dob
		_, err := svc.SignUp(ctx, req)
		requireKind(t, err, apperror.KindClient)
	})
}

func TestLoginAndRefresh(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, signUpRequest("login@example.com"))
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{Email: "login@example.com", Password: "wrong"})
		requireKind(t, err, apperror.KindClient)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{Email: "ghost@example.com", Password: "s3cret-pass"})
		requireKind(t, err, apperror.KindClient)
	})

	login, err := svc.Login(ctx, &request.LoginRequest{Email: "login@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.True(t, login.ValidUser)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)

	// Only the hash is stored, never the raw refresh token.
	stored, err := repo.Customer.FindByEmail(ctx, "login@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshTokenHash)
	assert.NotEqual(t, login.RefreshToken, *stored.RefreshTokenHash)

	refreshed, err := svc.RefreshToken(ctx, &request.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	t.Run("refresh fails after logout", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, stored.ID))
		_, err := svc.RefreshToken(ctx, &request.RefreshTokenRequest{RefreshToken: login.RefreshToken})
		requireKind(t, err, apperror.KindClient)
	})
}

func TestVerifyEmail(t *testing.T) {
	svc, repo, now := newAuthFixture(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, signUpRequest("verify@example.com"))
	require.NoError(t, err)
	customerID := uuid.MustParse(created.ID)

	stored, err := repo.Customer.FindByID(ctx, customerID)
	require.NoError(t, err)
	otp := *stored.OTP

	t.Run("wrong code", func(t *testing.T) {
		err := svc.VerifyEmail(ctx, customerID, &request.VerifyEmailRequest{OTP: "000000"})
		requireKind(t, err, apperror.KindClient)
	})

	t.Run("expired code", func(t *testing.T) {
		expired := NewAuthService(repo.Customer, testConfig(), clock.NewFixed(now.Add(time.Hour)), events.NoopPublisher{}, testLogger())
		err := expired.VerifyEmail(ctx, customerID, &request.VerifyEmailRequest{OTP: otp})
		requireKind(t, err, apperror.KindClient)
	})

	require.NoError(t, svc.VerifyEmail(ctx, customerID, &request.VerifyEmailRequest{OTP: otp}))

	stored, err = repo.Customer.FindByID(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	assert.Nil(t, stored.OTP)

	t.Run("already verified", func(t *testing.T) {
		err := svc.VerifyEmail(ctx, customerID, &request.VerifyEmailRequest{OTP: otp})
		requireKind(t, err, apperror.KindClient)
	})
}

func TestPasswordResetFlow(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, signUpRequest("reset@example.com"))
	require.NoError(t, err)

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "ghost@example.com"}))
	})

	require.NoError(t, svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "reset@example.com"}))

	stored, err := repo.Customer.FindByEmail(ctx, "reset@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.ResetTokenHash)

	t.Run("wrong token rejected", func(t *testing.T) {
		err := svc.ResetPassword(ctx, &request.ResetPasswordRequest{
			Email:         "reset@example.com",
			PasswordToken: "not-the-token",
			NewPassword:   "new-password-1",
		})
		requireKind(t, err, apperror.KindClient)
	})

	// The raw token travels via the notification event; for the test we
	// plant a known one directly.
	raw := "known-reset-token"
	hash := utils.HashToken(raw)
	stored.ResetTokenHash = &hash
	require.NoError(t, repo.Customer.Update(ctx, stored))

	require.NoError(t, svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:         "reset@example.com",
		PasswordToken: raw,
		NewPassword:   "new-password-1",
	}))

	login, err := svc.Login(ctx, &request.LoginRequest{Email: "reset@example.com", Password: "new-password-1"})
	require.NoError(t, err)
	assert.True(t, login.ValidUser)
}
