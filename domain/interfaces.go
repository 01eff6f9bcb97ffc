package domain

import (
	"context"
	"time"
)

// AccountRepository defines account data access operations. Create must
// surface the storage-level unique constraint on (email, type) as
// ErrEmailTaken; the preceding read in the service is only a fast path.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, accountType, email string) (*Account, error)
	FindByID(ctx context.Context, id uint) (*Account, error)
	Update(ctx context.Context, account *Account) error
}

// SessionTokenRepository defines session record data access operations.
// Deletion is keyed by account, not by token: every device's session
// collapses on logout (legacy semantics, kept deliberately).
type SessionTokenRepository interface {
	Create(ctx context.Context, token *SessionToken) error
	FindByAccount(ctx context.Context, accountID uint) ([]*SessionToken, error)
	Update(ctx context.Context, token *SessionToken) error
	DeleteByAccount(ctx context.Context, accountID uint) error
}

// CourseRepository defines course listing data access operations.
type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	FindByID(ctx context.Context, id uint) (*Course, error)
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id uint) error
}

// RegisterInput carries the profile fields submitted at registration.
type RegisterInput struct {
	Name     string
	Address  string
	Phone    string
	Code     string
	Email    string
	Password string
}

// LoginInput carries credentials plus the requesting device's metadata.
type LoginInput struct {
	Email     string
	Password  string
	IP        string
	UserAgent string
}

// AuthService defines the account lifecycle business logic shared by the
// company routes and the legacy course-account routes.
type AuthService interface {
	Register(ctx context.Context, accountType string, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, accountType string, in LoginInput) (*AuthResult, error)
	RefreshToken(ctx context.Context, accountType, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, accountID uint) error
	VerifyEmail(ctx context.Context, accountType, email string, code int) error
	ResendVerification(ctx context.Context, accountType, email string) error
	ForgotPassword(ctx context.Context, accountType, email string) error
	ResetPassword(ctx context.Context, accountType, email string, code int, newPassword string) error
	GetProfile(ctx context.Context, accountID uint) (*Account, error)
	EditProfile(ctx context.Context, accountID uint, updates map[string]string) (*Account, error)
}

// CourseInput carries the fields required to create a course listing.
type CourseInput struct {
	CompanyID   uint
	Title       string
	Quata       int
	Opening     string
	Closing     string
	Description string
	Images      []string
	Location    string
	Coordinates []float64
	Feature     *Feature
	Licence     *Licence
}

// CourseUpdate carries a partial update; nil fields are left untouched.
// InitialQuata is deliberately absent.
type CourseUpdate struct {
	Title       *string
	Quata       *int
	Opening     *string
	Closing     *string
	Description *string
	Images      []string
	Location    *string
	Coordinates []float64
	Feature     *Feature
	Licence     *Licence
}

// InstructorInput carries the fields submitted when adding an instructor.
type InstructorInput struct {
	Name           string
	Age            int
	ExperienceYear int
	Picture        string
}

// CourseService defines course listing business logic.
type CourseService interface {
	Create(ctx context.Context, in CourseInput) (*Course, error)
	Get(ctx context.Context, id uint) (*Course, error)
	Update(ctx context.Context, id uint, upd CourseUpdate) (*Course, error)
	Delete(ctx context.Context, id uint) error
	AddInstructor(ctx context.Context, courseID uint, in InstructorInput) ([]Instructor, error)
}

// CodeService generates the numeric verification / reset secrets and
// rate-limits their use through Redis.
type CodeService interface {
	Generate() (int, error)
	RegisterAttempt(ctx context.Context, scope, email string) error
	ClearAttempts(ctx context.Context, scope, email string) error
	CheckResend(ctx context.Context, scope, email string) (bool, int64, error)
	MarkResend(ctx context.Context, scope, email string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations. Access and refresh tokens are
// signed with separate secrets.
type TokenService interface {
	GenerateAccessToken(accountID uint, accountType, role string) (string, error)
	GenerateRefreshToken(accountID uint, accountType, role string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// Mailer defines the transactional email dispatcher.
type Mailer interface {
	SendVerificationEmail(name, email string, code int) error
	SendResetPasswordEmail(name, email string, code int) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
