// Package mocks provides hand-written test doubles for the domain
// interfaces. Each mock exposes func fields so a test configures only
// the calls it cares about; unset funcs return zero values.
package mocks

import (
	"context"
	"time"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// MockAccountRepository is a configurable account repository double.
type MockAccountRepository struct {
	CreateFunc      func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc func(ctx context.Context, accountType, email string) (*domain.Account, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.Account, error)
	UpdateFunc      func(ctx context.Context, account *domain.Account) error
}

var _ domain.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, accountType, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, accountType, email)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return nil
}

// MockSessionTokenRepository is a configurable session repository double.
type MockSessionTokenRepository struct {
	CreateFunc          func(ctx context.Context, token *domain.SessionToken) error
	FindByAccountFunc   func(ctx context.Context, accountID uint) ([]*domain.SessionToken, error)
	UpdateFunc          func(ctx context.Context, token *domain.SessionToken) error
	DeleteByAccountFunc func(ctx context.Context, accountID uint) error
}

var _ domain.SessionTokenRepository = (*MockSessionTokenRepository)(nil)

func (m *MockSessionTokenRepository) Create(ctx context.Context, token *domain.SessionToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *MockSessionTokenRepository) FindByAccount(ctx context.Context, accountID uint) ([]*domain.SessionToken, error) {
	if m.FindByAccountFunc != nil {
		return m.FindByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockSessionTokenRepository) Update(ctx context.Context, token *domain.SessionToken) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token)
	}
	return nil
}

func (m *MockSessionTokenRepository) DeleteByAccount(ctx context.Context, accountID uint) error {
	if m.DeleteByAccountFunc != nil {
		return m.DeleteByAccountFunc(ctx, accountID)
	}
	return nil
}

// MockCourseRepository is a configurable course repository double.
type MockCourseRepository struct {
	CreateFunc   func(ctx context.Context, course *domain.Course) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Course, error)
	UpdateFunc   func(ctx context.Context, course *domain.Course) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

var _ domain.CourseRepository = (*MockCourseRepository)(nil)

func (m *MockCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, course)
	}
	return nil
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id uint) (*domain.Course, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCourseNotFound
}

func (m *MockCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, course)
	}
	return nil
}

func (m *MockCourseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockPasswordService hashes by prefixing; Verify compares against that
// scheme unless overridden.
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

var _ domain.PasswordService = (*MockPasswordService)(nil)

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed:"+password
}

// MockTokenService is a configurable token service double.
type MockTokenService struct {
	GenerateAccessTokenFunc  func(accountID uint, accountType, role string) (string, error)
	GenerateRefreshTokenFunc func(accountID uint, accountType, role string) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
	AccessTTLValue           time.Duration
	RefreshTTLValue          time.Duration
}

var _ domain.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(accountID uint, accountType, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(accountID, accountType, role)
	}
	return "access-token", nil
}

func (m *MockTokenService) GenerateRefreshToken(accountID uint, accountType, role string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(accountID, accountType, role)
	}
	return "refresh-token", nil
}

func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) AccessTTL() time.Duration {
	if m.AccessTTLValue != 0 {
		return m.AccessTTLValue
	}
	return 24 * time.Hour
}

func (m *MockTokenService) RefreshTTL() time.Duration {
	if m.RefreshTTLValue != 0 {
		return m.RefreshTTLValue
	}
	return 30 * 24 * time.Hour
}

// MockCodeService is a configurable code service double. Generate
// returns a fixed code unless overridden, which keeps assertions exact.
type MockCodeService struct {
	GenerateFunc        func() (int, error)
	RegisterAttemptFunc func(ctx context.Context, scope, email string) error
	ClearAttemptsFunc   func(ctx context.Context, scope, email string) error
	CheckResendFunc     func(ctx context.Context, scope, email string) (bool, int64, error)
	MarkResendFunc      func(ctx context.Context, scope, email string) error
}

var _ domain.CodeService = (*MockCodeService)(nil)

func (m *MockCodeService) Generate() (int, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return 4321, nil
}

func (m *MockCodeService) RegisterAttempt(ctx context.Context, scope, email string) error {
	if m.RegisterAttemptFunc != nil {
		return m.RegisterAttemptFunc(ctx, scope, email)
	}
	return nil
}

func (m *MockCodeService) ClearAttempts(ctx context.Context, scope, email string) error {
	if m.ClearAttemptsFunc != nil {
		return m.ClearAttemptsFunc(ctx, scope, email)
	}
	return nil
}

func (m *MockCodeService) CheckResend(ctx context.Context, scope, email string) (bool, int64, error) {
	if m.CheckResendFunc != nil {
		return m.CheckResendFunc(ctx, scope, email)
	}
	return true, 0, nil
}

func (m *MockCodeService) MarkResend(ctx context.Context, scope, email string) error {
	if m.MarkResendFunc != nil {
		return m.MarkResendFunc(ctx, scope, email)
	}
	return nil
}

// MockMailer records sent mails for assertion.
type MockMailer struct {
	SendVerificationEmailFunc  func(name, email string, code int) error
	SendResetPasswordEmailFunc func(name, email string, code int) error

	VerificationSent []SentMail
	ResetSent        []SentMail
}

// SentMail is one recorded dispatch.
type SentMail struct {
	Name  string
	Email string
	Code  int
}

var _ domain.Mailer = (*MockMailer)(nil)

func (m *MockMailer) SendVerificationEmail(name, email string, code int) error {
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(name, email, code)
	}
	m.VerificationSent = append(m.VerificationSent, SentMail{name, email, code})
	return nil
}

func (m *MockMailer) SendResetPasswordEmail(name, email string, code int) error {
	if m.SendResetPasswordEmailFunc != nil {
		return m.SendResetPasswordEmailFunc(name, email, code)
	}
	m.ResetSent = append(m.ResetSent, SentMail{name, email, code})
	return nil
}

// MockCasbinEnforcer is a configurable enforcer double for the policy
// service tests.
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error
}

var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)

func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}
	return true, nil
}

func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}
	return true, nil
}

func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}
	return false, nil
}

func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	return nil, nil
}

func (m *MockCasbinEnforcer) SavePolicy() error {
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	return nil
}
