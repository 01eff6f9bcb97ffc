package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
	"github.com/hasansisik/kurstanbul-kos-server/internal/mocks"
	"github.com/hasansisik/kurstanbul-kos-server/internal/services"
)

type authFixture struct {
	accountRepo *mocks.MockAccountRepository
	sessionRepo *mocks.MockSessionTokenRepository
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
	codeSvc     *mocks.MockCodeService
	mailer      *mocks.MockMailer
	svc         domain.AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		accountRepo: &mocks.MockAccountRepository{},
		sessionRepo: &mocks.MockSessionTokenRepository{},
		passwordSvc: &mocks.MockPasswordService{},
		tokenSvc:    &mocks.MockTokenService{},
		codeSvc:     &mocks.MockCodeService{},
		mailer:      &mocks.MockMailer{},
	}
	f.svc = services.NewAuthService(
		f.accountRepo, f.sessionRepo, f.passwordSvc, f.tokenSvc, f.codeSvc, f.mailer,
	)
	return f
}

func validRegisterInput() domain.RegisterInput {
	return domain.RegisterInput{
		Name:     "Kadikoy Surucu Kursu",
		Address:  "Kadikoy, Istanbul",
		Phone:    "05321234567",
		Code:     "34-KDK-01",
		Email:    "info@kadikoy-kurs.com",
		Password: "sifre12345",
	}
}

func TestRegister_Success(t *testing.T) {
	f := newAuthFixture()

	var created *domain.Account
	f.accountRepo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
		account.ID = 7
		created = account
		return nil
	}

	res, err := f.svc.Register(context.Background(), domain.AccountTypeCompany, validRegisterInput())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, domain.AccountTypeCompany, created.Type)
	assert.Equal(t, "info@kadikoy-kurs.com", created.Email)
	assert.Equal(t, "hashed:sifre12345", created.PasswordHash)
	assert.Equal(t, "user", created.Role)
	assert.Equal(t, domain.SubsElite, created.Subs)
	assert.True(t, created.Status)
	assert.False(t, created.IsVerified)
	assert.Equal(t, 4321, created.VerificationCode)

	assert.Equal(t, "access-token", res.AccessToken)
	assert.Equal(t, "refresh-token", res.RefreshToken)
	assert.Equal(t, int64((24 * time.Hour).Seconds()), res.ExpiresIn)

	require.Len(t, f.mailer.VerificationSent, 1)
	assert.Equal(t, "info@kadikoy-kurs.com", f.mailer.VerificationSent[0].Email)
	assert.Equal(t, 4321, f.mailer.VerificationSent[0].Code)
}

func TestRegister_LowercasesEmail(t *testing.T) {
	f := newAuthFixture()

	var created *domain.Account
	f.accountRepo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
		created = account
		return nil
	}

	in := validRegisterInput()
	in.Email = "Info@Kadikoy-Kurs.COM"

	_, err := f.svc.Register(context.Background(), domain.AccountTypeCompany, in)
	require.NoError(t, err)
	assert.Equal(t, "info@kadikoy-kurs.com", created.Email)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *domain.RegisterInput)
		wantErr error
	}{
		{
			name:    "missing email",
			mutate:  func(in *domain.RegisterInput) { in.Email = "" },
			wantErr: domain.ErrMissingCredentials,
		},
		{
			name:    "missing password",
			mutate:  func(in *domain.RegisterInput) { in.Password = "" },
			wantErr: domain.ErrMissingCredentials,
		},
		{
			name:    "malformed email",
			mutate:  func(in *domain.RegisterInput) { in.Email = "not-an-email" },
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "short password",
			mutate:  func(in *domain.RegisterInput) { in.Password = "kisa" },
			wantErr: domain.ErrPasswordTooShort,
		},
		{
			name:    "bad phone",
			mutate:  func(in *domain.RegisterInput) { in.Phone = "12345" },
			wantErr: domain.ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			in := validRegisterInput()
			tt.mutate(&in)

			_, err := f.svc.Register(context.Background(), domain.AccountTypeCompany, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_DuplicateEmail_FastPath(t *testing.T) {
	f := newAuthFixture()
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return &domain.Account{ID: 1, Email: email}, nil
	}

	_, err := f.svc.Register(context.Background(), domain.AccountTypeCompany, validRegisterInput())
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Empty(t, f.mailer.VerificationSent)
}

func TestRegister_DuplicateEmail_RaceAtCreate(t *testing.T) {
	f := newAuthFixture()
	f.accountRepo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
		return domain.ErrEmailTaken
	}

	_, err := f.svc.Register(context.Background(), domain.AccountTypeCompany, validRegisterInput())
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_SameEmailDifferentType(t *testing.T) {
	f := newAuthFixture()
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		// Taken only on the company side.
		if accountType == domain.AccountTypeCompany {
			return &domain.Account{ID: 1}, nil
		}
		return nil, domain.ErrAccountNotFound
	}

	_, err := f.svc.Register(context.Background(), domain.AccountTypeCourse, validRegisterInput())
	assert.NoError(t, err)
}

func verifiedAccount() *domain.Account {
	return &domain.Account{
		ID:           7,
		Type:         domain.AccountTypeCompany,
		Name:         "Kadikoy Surucu Kursu",
		Email:        "info@kadikoy-kurs.com",
		PasswordHash: "hashed:sifre12345",
		Role:         "user",
		Subs:         domain.SubsElite,
		Status:       true,
		IsVerified:   true,
	}
}

func TestLogin_Success_CreatesSession(t *testing.T) {
	f := newAuthFixture()
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return verifiedAccount(), nil
	}

	var session *domain.SessionToken
	f.sessionRepo.CreateFunc = func(ctx context.Context, token *domain.SessionToken) error {
		session = token
		return nil
	}

	res, err := f.svc.Login(context.Background(), domain.AccountTypeCompany, domain.LoginInput{
		Email:     "info@kadikoy-kurs.com",
		Password:  "sifre12345",
		IP:        "10.0.0.9",
		UserAgent: "test-agent",
	})
	require.NoError(t, err)

	require.NotNil(t, session)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, uint(7), session.AccountID)
	assert.Equal(t, "refresh-token", session.RefreshToken)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, "10.0.0.9", session.IP)
	assert.Equal(t, "test-agent", session.UserAgent)
	assert.True(t, session.IsValid)

	assert.Equal(t, "access-token", res.AccessToken)
	assert.Equal(t, uint(7), res.Account.ID)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *authFixture)
		input   domain.LoginInput
		wantErr error
	}{
		{
			name:    "missing credentials",
			setup:   func(f *authFixture) {},
			input:   domain.LoginInput{Email: "info@kadikoy-kurs.com"},
			wantErr: domain.ErrMissingCredentials,
		},
		{
			name:    "unknown account",
			setup:   func(f *authFixture) {},
			input:   domain.LoginInput{Email: "yok@kurs.com", Password: "sifre12345"},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "wrong password",
			setup: func(f *authFixture) {
				f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
					return verifiedAccount(), nil
				}
			},
			input:   domain.LoginInput{Email: "info@kadikoy-kurs.com", Password: "yanlis-sifre"},
			wantErr: domain.ErrInvalidPassword,
		},
		{
			name: "unverified account",
			setup: func(f *authFixture) {
				f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
					acc := verifiedAccount()
					acc.IsVerified = false
					return acc, nil
				}
			},
			input:   domain.LoginInput{Email: "info@kadikoy-kurs.com", Password: "sifre12345"},
			wantErr: domain.ErrNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			tt.setup(f)

			_, err := f.svc.Login(context.Background(), domain.AccountTypeCompany, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRefreshToken_Success(t *testing.T) {
	f := newAuthFixture()
	f.tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{AccountID: 7, AccountType: domain.AccountTypeCompany, Role: "user"}, nil
	}
	f.tokenSvc.GenerateAccessTokenFunc = func(accountID uint, accountType, role string) (string, error) {
		return "fresh-access", nil
	}
	f.sessionRepo.FindByAccountFunc = func(ctx context.Context, accountID uint) ([]*domain.SessionToken, error) {
		return []*domain.SessionToken{
			{ID: "s1", AccountID: 7, RefreshToken: "other", IsValid: true},
			{ID: "s2", AccountID: 7, RefreshToken: "the-refresh", IsValid: true},
		}, nil
	}
	f.accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		return verifiedAccount(), nil
	}

	var updated *domain.SessionToken
	f.sessionRepo.UpdateFunc = func(ctx context.Context, token *domain.SessionToken) error {
		updated = token
		return nil
	}

	res, err := f.svc.RefreshToken(context.Background(), domain.AccountTypeCompany, "the-refresh")
	require.NoError(t, err)

	assert.Equal(t, "fresh-access", res.AccessToken)
	assert.Equal(t, "the-refresh", res.RefreshToken)
	require.NotNil(t, updated)
	assert.Equal(t, "s2", updated.ID)
	assert.Equal(t, "fresh-access", updated.AccessToken)
}

func TestRefreshToken_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *authFixture)
		wantErr error
	}{
		{
			name:    "invalid token",
			setup:   func(f *authFixture) {},
			wantErr: domain.ErrTokenInvalid,
		},
		{
			name: "account type mismatch",
			setup: func(f *authFixture) {
				f.tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{AccountID: 7, AccountType: domain.AccountTypeCourse}, nil
				}
			},
			wantErr: domain.ErrTokenInvalid,
		},
		{
			name: "no backing session",
			setup: func(f *authFixture) {
				f.tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{AccountID: 7, AccountType: domain.AccountTypeCompany}, nil
				}
			},
			wantErr: domain.ErrSessionNotFound,
		},
		{
			name: "session invalidated",
			setup: func(f *authFixture) {
				f.tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{AccountID: 7, AccountType: domain.AccountTypeCompany}, nil
				}
				f.sessionRepo.FindByAccountFunc = func(ctx context.Context, accountID uint) ([]*domain.SessionToken, error) {
					return []*domain.SessionToken{
						{ID: "s1", AccountID: 7, RefreshToken: "the-refresh", IsValid: false},
					}, nil
				}
			},
			wantErr: domain.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			tt.setup(f)

			_, err := f.svc.RefreshToken(context.Background(), domain.AccountTypeCompany, "the-refresh")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogout_DeletesAllSessionsForAccount(t *testing.T) {
	f := newAuthFixture()

	var deletedID uint
	f.sessionRepo.DeleteByAccountFunc = func(ctx context.Context, accountID uint) error {
		deletedID = accountID
		return nil
	}

	require.NoError(t, f.svc.Logout(context.Background(), 7))
	assert.Equal(t, uint(7), deletedID)
}

func TestVerifyEmail_Success_ClearsCode(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	acc.IsVerified = false
	acc.VerificationCode = 5555
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return acc, nil
	}

	var updated *domain.Account
	f.accountRepo.UpdateFunc = func(ctx context.Context, account *domain.Account) error {
		updated = account
		return nil
	}

	cleared := false
	f.codeSvc.ClearAttemptsFunc = func(ctx context.Context, scope, email string) error {
		assert.Equal(t, services.ScopeVerify, scope)
		cleared = true
		return nil
	}

	err := f.svc.VerifyEmail(context.Background(), domain.AccountTypeCompany, acc.Email, 5555)
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.True(t, updated.IsVerified)
	assert.Zero(t, updated.VerificationCode)
	assert.True(t, cleared)
}

func TestVerifyEmail_CodeIsSingleUse(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	acc.IsVerified = false
	acc.VerificationCode = 5555
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return acc, nil
	}

	require.NoError(t, f.svc.VerifyEmail(context.Background(), domain.AccountTypeCompany, acc.Email, 5555))

	// The cleared code must not match again, not even as zero.
	err := f.svc.VerifyEmail(context.Background(), domain.AccountTypeCompany, acc.Email, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidVerificationCode)

	err = f.svc.VerifyEmail(context.Background(), domain.AccountTypeCompany, acc.Email, 5555)
	assert.ErrorIs(t, err, domain.ErrInvalidVerificationCode)
}

func TestVerifyEmail_WrongCode(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	acc.IsVerified = false
	acc.VerificationCode = 5555
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return acc, nil
	}

	err := f.svc.VerifyEmail(context.Background(), domain.AccountTypeCompany, acc.Email, 1111)
	assert.ErrorIs(t, err, domain.ErrInvalidVerificationCode)
	assert.False(t, acc.IsVerified)
}

func TestVerifyEmail_AttemptLimit(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	acc.IsVerified = false
	acc.VerificationCode = 5555
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return acc, nil
	}
	f.codeSvc.RegisterAttemptFunc = func(ctx context.Context, scope, email string) error {
		return domain.ErrTooManyAttempts
	}

	// Even the correct code is refused once the counter is exhausted.
	err := f.svc.VerifyEmail(context.Background(), domain.AccountTypeCompany, acc.Email, 5555)
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
	assert.False(t, acc.IsVerified)
}

func TestResendVerification_Throttled(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	acc.IsVerified = false
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return acc, nil
	}
	f.codeSvc.CheckResendFunc = func(ctx context.Context, scope, email string) (bool, int64, error) {
		return false, 42, nil
	}

	err := f.svc.ResendVerification(context.Background(), domain.AccountTypeCompany, acc.Email)
	assert.ErrorIs(t, err, domain.ErrResendThrottled)
	assert.Empty(t, f.mailer.VerificationSent)
}

func TestResendVerification_IssuesNewCode(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	acc.IsVerified = false
	acc.VerificationCode = 1111
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return acc, nil
	}
	f.codeSvc.GenerateFunc = func() (int, error) { return 9876, nil }

	marked := false
	f.codeSvc.MarkResendFunc = func(ctx context.Context, scope, email string) error {
		assert.Equal(t, services.ScopeVerify, scope)
		marked = true
		return nil
	}

	require.NoError(t, f.svc.ResendVerification(context.Background(), domain.AccountTypeCompany, acc.Email))

	assert.Equal(t, 9876, acc.VerificationCode)
	require.Len(t, f.mailer.VerificationSent, 1)
	assert.Equal(t, 9876, f.mailer.VerificationSent[0].Code)
	assert.True(t, marked)
}

func TestForgotPassword_SetsCodeAndExpiry(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return acc, nil
	}
	f.codeSvc.GenerateFunc = func() (int, error) { return 2468, nil }

	before := time.Now()
	require.NoError(t, f.svc.ForgotPassword(context.Background(), domain.AccountTypeCompany, acc.Email))

	assert.Equal(t, 2468, acc.ResetCode)
	require.NotNil(t, acc.ResetCodeExpiresAt)
	assert.WithinDuration(t, before.Add(10*time.Minute), *acc.ResetCodeExpiresAt, 2*time.Second)

	require.Len(t, f.mailer.ResetSent, 1)
	assert.Equal(t, 2468, f.mailer.ResetSent[0].Code)
}

func TestForgotPassword_Failures(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.ForgotPassword(context.Background(), domain.AccountTypeCompany, "")
	assert.ErrorIs(t, err, domain.ErrMissingEmail)

	err = f.svc.ForgotPassword(context.Background(), domain.AccountTypeCompany, "yok@kurs.com")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestResetPassword_Success(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	exp := time.Now().Add(5 * time.Minute)
	acc.ResetCode = 2468
	acc.ResetCodeExpiresAt = &exp
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return acc, nil
	}

	err := f.svc.ResetPassword(context.Background(), domain.AccountTypeCompany, acc.Email, 2468, "yeni-sifre-99")
	require.NoError(t, err)

	assert.Equal(t, "hashed:yeni-sifre-99", acc.PasswordHash)
	assert.Zero(t, acc.ResetCode)
	assert.Nil(t, acc.ResetCodeExpiresAt)
}

func TestResetPassword_Failures(t *testing.T) {
	exp := time.Now().Add(5 * time.Minute)
	past := time.Now().Add(-time.Minute)

	tests := []struct {
		name        string
		account     func() *domain.Account
		code        int
		newPassword string
		wantErr     error
	}{
		{
			name:        "missing fields",
			account:     verifiedAccount,
			code:        0,
			newPassword: "",
			wantErr:     domain.ErrMissingResetFields,
		},
		{
			name: "wrong code",
			account: func() *domain.Account {
				acc := verifiedAccount()
				acc.ResetCode = 2468
				acc.ResetCodeExpiresAt = &exp
				return acc
			},
			code:        1357,
			newPassword: "yeni-sifre-99",
			wantErr:     domain.ErrInvalidResetCode,
		},
		{
			name: "expired code",
			account: func() *domain.Account {
				acc := verifiedAccount()
				acc.ResetCode = 2468
				acc.ResetCodeExpiresAt = &past
				return acc
			},
			code:        2468,
			newPassword: "yeni-sifre-99",
			wantErr:     domain.ErrResetCodeExpired,
		},
		{
			name: "no pending reset",
			account: func() *domain.Account {
				return verifiedAccount()
			},
			code:        2468,
			newPassword: "yeni-sifre-99",
			wantErr:     domain.ErrInvalidResetCode,
		},
		{
			name: "short new password",
			account: func() *domain.Account {
				acc := verifiedAccount()
				acc.ResetCode = 2468
				acc.ResetCodeExpiresAt = &exp
				return acc
			},
			code:        2468,
			newPassword: "kisa",
			wantErr:     domain.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			acc := tt.account()
			f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
				return acc, nil
			}

			err := f.svc.ResetPassword(context.Background(), domain.AccountTypeCompany, acc.Email, tt.code, tt.newPassword)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, "hashed:sifre12345", acc.PasswordHash)
		})
	}
}

func TestResetPassword_ExpiryCheckedAfterMatch(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	past := time.Now().Add(-time.Minute)
	acc.ResetCode = 2468
	acc.ResetCodeExpiresAt = &past
	f.accountRepo.FindByEmailFunc = func(ctx context.Context, accountType, email string) (*domain.Account, error) {
		return acc, nil
	}

	// A wrong code on an expired reset reports the mismatch, not the
	// expiry.
	err := f.svc.ResetPassword(context.Background(), domain.AccountTypeCompany, acc.Email, 1357, "yeni-sifre-99")
	assert.ErrorIs(t, err, domain.ErrInvalidResetCode)
}

func TestEditProfile_AllowList(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	f.accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		return acc, nil
	}

	updateCalled := false
	f.accountRepo.UpdateFunc = func(ctx context.Context, account *domain.Account) error {
		updateCalled = true
		return nil
	}

	_, err := f.svc.EditProfile(context.Background(), 7, map[string]string{
		"name": "Yeni Ad",
		"role": "admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidFields)
	// The whole request is rejected; the allowed field must not land.
	assert.False(t, updateCalled)
	assert.Equal(t, "Kadikoy Surucu Kursu", acc.Name)
}

func TestEditProfile_UpdatesAllowedFields(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	f.accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		return acc, nil
	}

	res, err := f.svc.EditProfile(context.Background(), 7, map[string]string{
		"name":     "Yeni Ad",
		"address":  "Uskudar, Istanbul",
		"phone":    "05419876543",
		"code":     "34-USK-02",
		"password": "yeni-sifre-99",
	})
	require.NoError(t, err)

	assert.Equal(t, "Yeni Ad", res.Name)
	assert.Equal(t, "Uskudar, Istanbul", res.Address)
	assert.Equal(t, "05419876543", res.Phone)
	assert.Equal(t, "34-USK-02", res.Code)
	assert.Equal(t, "hashed:yeni-sifre-99", res.PasswordHash)
	assert.True(t, res.IsVerified)
	assert.Empty(t, f.mailer.VerificationSent)
}

func TestEditProfile_EmptyValuesDropped(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	f.accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		return acc, nil
	}

	res, err := f.svc.EditProfile(context.Background(), 7, map[string]string{
		"name":  "",
		"email": "",
	})
	require.NoError(t, err)

	assert.Equal(t, "Kadikoy Surucu Kursu", res.Name)
	assert.Equal(t, "info@kadikoy-kurs.com", res.Email)
	assert.True(t, res.IsVerified)
}

func TestEditProfile_EmailChangeForcesReverification(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	f.accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		return acc, nil
	}
	f.codeSvc.GenerateFunc = func() (int, error) { return 3141, nil }

	res, err := f.svc.EditProfile(context.Background(), 7, map[string]string{
		"email": "Yeni@Kurs.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "yeni@kurs.com", res.Email)
	assert.False(t, res.IsVerified)
	assert.Equal(t, 3141, res.VerificationCode)

	require.Len(t, f.mailer.VerificationSent, 1)
	assert.Equal(t, "yeni@kurs.com", f.mailer.VerificationSent[0].Email)
	assert.Equal(t, 3141, f.mailer.VerificationSent[0].Code)
}

func TestEditProfile_SameEmailNoReverification(t *testing.T) {
	f := newAuthFixture()
	acc := verifiedAccount()
	f.accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		return acc, nil
	}

	res, err := f.svc.EditProfile(context.Background(), 7, map[string]string{
		"email": "INFO@kadikoy-kurs.com",
	})
	require.NoError(t, err)

	assert.True(t, res.IsVerified)
	assert.Empty(t, f.mailer.VerificationSent)
}

func TestEditProfile_FieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		updates map[string]string
		wantErr error
	}{
		{
			name:    "bad phone",
			updates: map[string]string{"phone": "12345"},
			wantErr: domain.ErrInvalidPhone,
		},
		{
			name:    "short password",
			updates: map[string]string{"password": "kisa"},
			wantErr: domain.ErrPasswordTooShort,
		},
		{
			name:    "malformed email",
			updates: map[string]string{"email": "not-an-email"},
			wantErr: domain.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			f.accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
				return verifiedAccount(), nil
			}

			_, err := f.svc.EditProfile(context.Background(), 7, tt.updates)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetProfile(t *testing.T) {
	f := newAuthFixture()
	f.accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		if id == 7 {
			return verifiedAccount(), nil
		}
		return nil, domain.ErrAccountNotFound
	}

	acc, err := f.svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "info@kadikoy-kurs.com", acc.Email)

	_, err = f.svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
