package domain

import "errors"

// Authentication errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email address already registered")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrNotVerified        = errors.New("email address not verified")
)

// Verification and reset-code errors
var (
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrMissingEmail            = errors.New("email address is required")
	ErrMissingResetFields      = errors.New("reset code and new password are required")
	ErrInvalidResetCode        = errors.New("invalid reset code")
	ErrResetCodeExpired        = errors.New("reset code has expired")
	ErrTooManyAttempts         = errors.New("maximum code attempts exceeded")
	ErrResendThrottled         = errors.New("resend limit exceeded")
)

// Profile errors
var (
	ErrInvalidFields    = errors.New("update contains fields that cannot be changed")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

// Token errors
var (
	ErrTokenInvalid    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token has expired")
	ErrTokenMalformed  = errors.New("malformed token")
	ErrSessionNotFound = errors.New("session not found")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrMissingCourseFields = errors.New("all course fields are required")
	ErrCourseInvalid       = errors.New("course validation failed")
)
