package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags).
// The composite unique index on (email, account_type) is the
// authoritative duplicate-email signal; the service's pre-read is only a
// fast path.
type DBAccount struct {
	ID                 uint   `gorm:"primaryKey"`
	AccountType        string `gorm:"uniqueIndex:idx_accounts_email_type;size:16"`
	Email              string `gorm:"uniqueIndex:idx_accounts_email_type;size:255"`
	Name               string `gorm:"size:255"`
	Address            string `gorm:"size:512"`
	Phone              string `gorm:"size:32"`
	Code               string `gorm:"size:64"`
	PasswordHash       string `gorm:"column:password"`
	Role               string `gorm:"index;size:64"`
	Subs               string `gorm:"size:16"`
	Status             bool
	IsVerified         bool
	VerificationCode   int
	ResetCode          int
	ResetCodeExpiresAt *time.Time
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	account.ID = dbAccount.ID
	account.CreatedAt = dbAccount.CreatedAt
	account.UpdatedAt = dbAccount.UpdatedAt
	return nil
}

// FindByEmail implements domain.AccountRepository. Emails are stored
// lowercased, so the match is case-insensitive.
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, accountType, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).
		Where("account_type = ? AND email = ?", accountType, strings.ToLower(email)).
		First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// Update implements domain.AccountRepository
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	// Select("*") so cleared codes and flipped flags reach zero values.
	err := r.db.WithContext(ctx).Model(dbAccount).Select("*").
		Omit("id", "created_at").Updates(dbAccount).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:                 account.ID,
		AccountType:        account.Type,
		Email:              strings.ToLower(account.Email),
		Name:               account.Name,
		Address:            account.Address,
		Phone:              account.Phone,
		Code:               account.Code,
		PasswordHash:       account.PasswordHash,
		Role:               account.Role,
		Subs:               account.Subs,
		Status:             account.Status,
		IsVerified:         account.IsVerified,
		VerificationCode:   account.VerificationCode,
		ResetCode:          account.ResetCode,
		ResetCodeExpiresAt: account.ResetCodeExpiresAt,
	}
}

func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:                 dbAccount.ID,
		Type:               dbAccount.AccountType,
		Email:              dbAccount.Email,
		Name:               dbAccount.Name,
		Address:            dbAccount.Address,
		Phone:              dbAccount.Phone,
		Code:               dbAccount.Code,
		PasswordHash:       dbAccount.PasswordHash,
		Role:               dbAccount.Role,
		Subs:               dbAccount.Subs,
		Status:             dbAccount.Status,
		IsVerified:         dbAccount.IsVerified,
		VerificationCode:   dbAccount.VerificationCode,
		ResetCode:          dbAccount.ResetCode,
		ResetCodeExpiresAt: dbAccount.ResetCodeExpiresAt,
		CreatedAt:          dbAccount.CreatedAt,
		UpdatedAt:          dbAccount.UpdatedAt,
	}
}
