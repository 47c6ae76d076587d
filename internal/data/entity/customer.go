package entity

import (
	"fmt"
	"time"
)

// Role is a closed enumeration; anything outside it is rejected at the
// access-control boundary.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a raw claim to the role enum.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

type Customer struct {
	Base
	Name             string     `db:"name"`
	Email            string     `db:"email"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	Phone            *string    `db:"phone"`
	PasswordHash     string     `db:"password"`
	Verified         bool       `db:"verified"`
	Role             Role       `db:"role"`
	OTP              *string    `db:"otp"`
	OTPExpiration    *time.Time `db:"otp_expiration"`
	ResetTokenHash   *string    `db:"reset_password_token"`
	ResetExpiration  *time.Time `db:"reset_password_expiration"`
	RefreshTokenHash *string    `db:"refresh_token_hash"`
}
