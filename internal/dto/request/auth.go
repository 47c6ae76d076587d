package request

type SignUpRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	DateOfBirth     *string `json:"dateOfBirth,omitempty"` // DD/MM/YYYY
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=7,max=15"`
	Password        string  `json:"password" validate:"required,min=8"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type VerifyEmailRequest struct {
	OTP string `json:"OTP" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	PasswordToken string `json:"passwordToken" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	NewPassword   string `json:"newPassword" validate:"required,min=8"`
}
