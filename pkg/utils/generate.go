package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateOTP creates a numeric OTP of the given length.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	otp := ""
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			n = big.NewInt(0)
		}
		otp += n.String()
	}

	return otp
}

// GenerateResetToken returns a raw password-reset token. Store HashToken
// of it, never the raw value.
func GenerateResetToken() (string, error) {
	return randomHex(32)
}

// ParseInt converts a string to int with a default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
