package mocks

import (
	"context"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// MockAuthService is a configurable auth service double for handler
// tests.
type MockAuthService struct {
	RegisterFunc           func(ctx context.Context, accountType string, in domain.RegisterInput) (*domain.AuthResult, error)
	LoginFunc              func(ctx context.Context, accountType string, in domain.LoginInput) (*domain.AuthResult, error)
	RefreshTokenFunc       func(ctx context.Context, accountType, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc             func(ctx context.Context, accountID uint) error
	VerifyEmailFunc        func(ctx context.Context, accountType, email string, code int) error
	ResendVerificationFunc func(ctx context.Context, accountType, email string) error
	ForgotPasswordFunc     func(ctx context.Context, accountType, email string) error
	ResetPasswordFunc      func(ctx context.Context, accountType, email string, code int, newPassword string) error
	GetProfileFunc         func(ctx context.Context, accountID uint) (*domain.Account, error)
	EditProfileFunc        func(ctx context.Context, accountID uint, updates map[string]string) (*domain.Account, error)
}

var _ domain.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Register(ctx context.Context, accountType string, in domain.RegisterInput) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, accountType, in)
	}
	return nil, domain.ErrMissingCredentials
}

func (m *MockAuthService) Login(ctx context.Context, accountType string, in domain.LoginInput) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, accountType, in)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAuthService) RefreshToken(ctx context.Context, accountType, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, accountType, refreshToken)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockAuthService) Logout(ctx context.Context, accountID uint) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accountID)
	}
	return nil
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, accountType, email string, code int) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, accountType, email, code)
	}
	return nil
}

func (m *MockAuthService) ResendVerification(ctx context.Context, accountType, email string) error {
	if m.ResendVerificationFunc != nil {
		return m.ResendVerificationFunc(ctx, accountType, email)
	}
	return nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, accountType, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, accountType, email)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, accountType, email string, code int, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, accountType, email, code, newPassword)
	}
	return nil
}

func (m *MockAuthService) GetProfile(ctx context.Context, accountID uint) (*domain.Account, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, accountID)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAuthService) EditProfile(ctx context.Context, accountID uint, updates map[string]string) (*domain.Account, error) {
	if m.EditProfileFunc != nil {
		return m.EditProfileFunc(ctx, accountID, updates)
	}
	return nil, domain.ErrAccountNotFound
}
