package response

import (
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
)

type CustomerResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	DateOfBirth *string     `json:"dateOfBirth,omitempty"`
	Phone       *string     `json:"phone,omitempty"`
	Verified    bool        `json:"verified"`
	Role        entity.Role `json:"role"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type LoginResponse struct {
	ValidUser             bool      `json:"validUser"`
	AccessToken           string    `json:"accessToken"`
	RefreshToken          string    `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

type TokenResponse struct {
	AccessToken          string    `json:"accessToken"`
	AccessTokenExpiresAt time.Time `json:"accessTokenExpiresAt"`
}

// CustomerToResponse strips credentials and server-only fields.
func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Verified:  customer.Verified,
		Role:      customer.Role,
		CreatedAt: customer.CreatedAt,
	}

	if customer.DateOfBirth != nil {
		dob := customer.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}

	return resp
}
