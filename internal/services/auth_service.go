package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// resetCodeTTL is the validity window of a password-reset code, measured
// from issuance and checked against the stored absolute timestamp.
const resetCodeTTL = 10 * time.Minute

// AuthServiceImpl implements domain.AuthService. One implementation
// serves both the company routes and the legacy course-account routes;
// the account type tag is the only difference.
type AuthServiceImpl struct {
	accountRepo domain.AccountRepository
	sessionRepo domain.SessionTokenRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	codeSvc     domain.CodeService
	mailer      domain.Mailer
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo domain.AccountRepository,
	sessionRepo domain.SessionTokenRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	codeSvc domain.CodeService,
	mailer domain.Mailer,
) domain.AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		codeSvc:     codeSvc,
		mailer:      mailer,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, accountType string, in domain.RegisterInput) (*domain.AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if !domain.ValidEmail(in.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(in.Password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if !domain.ValidPhone(in.Phone) {
		return nil, domain.ErrInvalidPhone
	}

	// Fast path only; the unique index on (email, type) is authoritative
	// and Create surfaces the losing side of a race as ErrEmailTaken.
	if existing, err := s.accountRepo.FindByEmail(ctx, accountType, in.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := s.codeSvc.Generate()
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Type:             accountType,
		Name:             in.Name,
		Address:          in.Address,
		Phone:            in.Phone,
		Code:             in.Code,
		Email:            strings.ToLower(in.Email),
		PasswordHash:     hashed,
		Role:             "user",
		Subs:             domain.SubsElite,
		Status:           true,
		IsVerified:       false,
		VerificationCode: code,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if err == domain.ErrEmailTaken {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	accessToken, refreshToken, err := s.issueTokens(account)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerificationEmail(account.Name, account.Email, code); err != nil {
		return nil, fmt.Errorf("failed to send verification email: %w", err)
	}

	return &domain.AuthResult{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, accountType string, in domain.LoginInput) (*domain.AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	account, err := s.accountRepo.FindByEmail(ctx, accountType, in.Email)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	if !s.passwordSvc.Verify(account.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidPassword
	}

	if !account.IsVerified {
		return nil, domain.ErrNotVerified
	}

	accessToken, refreshToken, err := s.issueTokens(account)
	if err != nil {
		return nil, err
	}

	session := &domain.SessionToken{
		ID:           uuid.NewString(),
		AccountID:    account.ID,
		RefreshToken: refreshToken,
		AccessToken:  accessToken,
		IP:           in.IP,
		UserAgent:    in.UserAgent,
		IsValid:      true,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &domain.AuthResult{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}

// RefreshToken implements domain.AuthService. The refresh token must
// still be backed by a stored session record; deleting the record at
// logout revokes it.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, accountType, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	if claims.AccountType != accountType {
		return nil, domain.ErrTokenInvalid
	}

	sessions, err := s.sessionRepo.FindByAccount(ctx, claims.AccountID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	var session *domain.SessionToken
	for _, t := range sessions {
		if t.RefreshToken == refreshToken && t.IsValid {
			session = t
			break
		}
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}

	account, err := s.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(account.ID, account.Type, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	session.AccessToken = accessToken
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return &domain.AuthResult{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}

// Logout implements domain.AuthService. Deletion is keyed by account,
// so every device's session goes at once; absence of a record is fine.
func (s *AuthServiceImpl) Logout(ctx context.Context, accountID uint) error {
	return s.sessionRepo.DeleteByAccount(ctx, accountID)
}

// VerifyEmail implements domain.AuthService. The stored code is
// single-use: a successful match clears it.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, accountType, email string, code int) error {
	account, err := s.accountRepo.FindByEmail(ctx, accountType, email)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	if err := s.codeSvc.RegisterAttempt(ctx, ScopeVerify, account.Email); err != nil {
		return err
	}

	if account.VerificationCode == 0 || account.VerificationCode != code {
		return domain.ErrInvalidVerificationCode
	}

	account.IsVerified = true
	account.VerificationCode = 0
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	_ = s.codeSvc.ClearAttempts(ctx, ScopeVerify, account.Email)

	log.Printf("EMAIL_VERIFIED: account_id=%d email=%s timestamp=%s",
		account.ID, account.Email, time.Now().UTC().Format(time.RFC3339))

	return nil
}

// ResendVerification implements domain.AuthService
func (s *AuthServiceImpl) ResendVerification(ctx context.Context, accountType, email string) error {
	account, err := s.accountRepo.FindByEmail(ctx, accountType, email)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	if can, _, err := s.codeSvc.CheckResend(ctx, ScopeVerify, account.Email); err == nil && !can {
		return domain.ErrResendThrottled
	}

	code, err := s.codeSvc.Generate()
	if err != nil {
		return err
	}

	account.VerificationCode = code
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	if err := s.mailer.SendVerificationEmail(account.Name, account.Email, code); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return s.codeSvc.MarkResend(ctx, ScopeVerify, account.Email)
}

// ForgotPassword implements domain.AuthService. An unknown address is
// reported as not found; see DESIGN.md for the policy choice.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, accountType, email string) error {
	if email == "" {
		return domain.ErrMissingEmail
	}

	account, err := s.accountRepo.FindByEmail(ctx, accountType, email)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	if can, _, err := s.codeSvc.CheckResend(ctx, ScopeReset, account.Email); err == nil && !can {
		return domain.ErrResendThrottled
	}

	code, err := s.codeSvc.Generate()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(resetCodeTTL)
	account.ResetCode = code
	account.ResetCodeExpiresAt = &expiresAt
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	if err := s.mailer.SendResetPasswordEmail(account.Name, account.Email, code); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return s.codeSvc.MarkResend(ctx, ScopeReset, account.Email)
}

// ResetPassword implements domain.AuthService. The code must match
// before the window is checked; a correct code past the 10-minute window
// fails without touching the password.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, accountType, email string, code int, newPassword string) error {
	if code == 0 || newPassword == "" {
		return domain.ErrMissingResetFields
	}

	account, err := s.accountRepo.FindByEmail(ctx, accountType, email)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	if err := s.codeSvc.RegisterAttempt(ctx, ScopeReset, account.Email); err != nil {
		return err
	}

	if account.ResetCode == 0 || account.ResetCode != code {
		return domain.ErrInvalidResetCode
	}
	if account.ResetCodeExpiresAt == nil || time.Now().After(*account.ResetCodeExpiresAt) {
		return domain.ErrResetCodeExpired
	}

	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}
	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account.PasswordHash = hashed
	account.ResetCode = 0
	account.ResetCodeExpiresAt = nil
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	_ = s.codeSvc.ClearAttempts(ctx, ScopeReset, account.Email)
	return nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, accountID uint) (*domain.Account, error) {
	return s.accountRepo.FindByID(ctx, accountID)
}

// editableFields is the edit-profile allow-list. A request naming any
// other field is rejected whole, before any change is applied.
var editableFields = map[string]bool{
	"name":     true,
	"email":    true,
	"password": true,
	"address":  true,
	"phone":    true,
	"code":     true,
}

// EditProfile implements domain.AuthService. Changing the email forces
// re-verification; empty submitted values are dropped, matching the
// legacy behavior (see DESIGN.md).
func (s *AuthServiceImpl) EditProfile(ctx context.Context, accountID uint, updates map[string]string) (*domain.Account, error) {
	for field := range updates {
		if !editableFields[field] {
			return nil, domain.ErrInvalidFields
		}
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	emailChanged := false
	if newEmail, ok := updates["email"]; ok && newEmail != "" && strings.ToLower(newEmail) != account.Email {
		if !domain.ValidEmail(newEmail) {
			return nil, domain.ErrInvalidEmail
		}
		code, err := s.codeSvc.Generate()
		if err != nil {
			return nil, err
		}
		account.Email = strings.ToLower(newEmail)
		account.VerificationCode = code
		account.IsVerified = false
		emailChanged = true
	}

	if v, ok := updates["name"]; ok && v != "" {
		account.Name = v
	}
	if v, ok := updates["address"]; ok && v != "" {
		account.Address = v
	}
	if v, ok := updates["code"]; ok && v != "" {
		account.Code = v
	}
	if v, ok := updates["phone"]; ok && v != "" {
		if !domain.ValidPhone(v) {
			return nil, domain.ErrInvalidPhone
		}
		account.Phone = v
	}
	if v, ok := updates["password"]; ok && v != "" {
		if len(v) < domain.MinPasswordLength {
			return nil, domain.ErrPasswordTooShort
		}
		hashed, err := s.passwordSvc.Hash(v)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		account.PasswordHash = hashed
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	if emailChanged {
		if err := s.mailer.SendVerificationEmail(account.Name, account.Email, account.VerificationCode); err != nil {
			return nil, fmt.Errorf("failed to send verification email: %w", err)
		}
	}

	return account, nil
}

func (s *AuthServiceImpl) issueTokens(account *domain.Account) (string, string, error) {
	accessToken, err := s.tokenSvc.GenerateAccessToken(account.ID, account.Type, account.Role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(account.ID, account.Type, account.Role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}
