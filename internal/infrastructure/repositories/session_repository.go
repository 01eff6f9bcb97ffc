package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// SessionTokenRepositoryImpl implements domain.SessionTokenRepository
// using GORM. Each login writes one row; logout deletes every row of the
// account.
type SessionTokenRepositoryImpl struct {
	db *gorm.DB
}

// DBSessionToken represents the database model for SessionToken
type DBSessionToken struct {
	ID           string `gorm:"primaryKey;size:36"`
	AccountID    uint   `gorm:"index"`
	RefreshToken string `gorm:"size:1024"`
	AccessToken  string `gorm:"size:1024"`
	IP           string `gorm:"size:64"`
	UserAgent    string `gorm:"size:512"`
	IsValid      bool   `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBSessionToken) TableName() string {
	return "session_tokens"
}

// NewSessionTokenRepository creates a new session token repository
func NewSessionTokenRepository(db *gorm.DB) domain.SessionTokenRepository {
	return &SessionTokenRepositoryImpl{db: db}
}

// Create implements domain.SessionTokenRepository
func (r *SessionTokenRepositoryImpl) Create(ctx context.Context, token *domain.SessionToken) error {
	dbToken := r.domainToDB(token)
	if err := r.db.WithContext(ctx).Create(dbToken).Error; err != nil {
		return err
	}
	token.CreatedAt = dbToken.CreatedAt
	token.UpdatedAt = dbToken.UpdatedAt
	return nil
}

// FindByAccount implements domain.SessionTokenRepository
func (r *SessionTokenRepositoryImpl) FindByAccount(ctx context.Context, accountID uint) ([]*domain.SessionToken, error) {
	var dbTokens []DBSessionToken
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&dbTokens).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	tokens := make([]*domain.SessionToken, 0, len(dbTokens))
	for i := range dbTokens {
		tokens = append(tokens, r.dbToDomain(&dbTokens[i]))
	}
	return tokens, nil
}

// Update implements domain.SessionTokenRepository
func (r *SessionTokenRepositoryImpl) Update(ctx context.Context, token *domain.SessionToken) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(token)).Error
}

// DeleteByAccount implements domain.SessionTokenRepository. Deleting
// zero rows is not an error; logout is idempotent.
func (r *SessionTokenRepositoryImpl) DeleteByAccount(ctx context.Context, accountID uint) error {
	return r.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&DBSessionToken{}).Error
}

func (r *SessionTokenRepositoryImpl) domainToDB(token *domain.SessionToken) *DBSessionToken {
	return &DBSessionToken{
		ID:           token.ID,
		AccountID:    token.AccountID,
		RefreshToken: token.RefreshToken,
		AccessToken:  token.AccessToken,
		IP:           token.IP,
		UserAgent:    token.UserAgent,
		IsValid:      token.IsValid,
	}
}

func (r *SessionTokenRepositoryImpl) dbToDomain(dbToken *DBSessionToken) *domain.SessionToken {
	return &domain.SessionToken{
		ID:           dbToken.ID,
		AccountID:    dbToken.AccountID,
		RefreshToken: dbToken.RefreshToken,
		AccessToken:  dbToken.AccessToken,
		IP:           dbToken.IP,
		UserAgent:    dbToken.UserAgent,
		IsValid:      dbToken.IsValid,
		CreatedAt:    dbToken.CreatedAt,
		UpdatedAt:    dbToken.UpdatedAt,
	}
}
