package postgres

import (
	"context"
	"time"

	"ridehail/internal/domain/entity"
	"ridehail/internal/domain/repository"
	"ridehail/internal/errors"
	"ridehail/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository backed by PostgreSQL.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var record model.AccountModel
	err := r.db.WithContext(ctx).
		Preload("DriverProfile").
		Preload("PassengerProfile").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return accountToDomain(&record), nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var record model.AccountModel
	err := r.db.WithContext(ctx).
		Preload("DriverProfile").
		Preload("PassengerProfile").
		First(&record, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return accountToDomain(&record), nil
}

func (r *accountRepository) FindByRefreshTokenHash(ctx context.Context, tokenHash string) (*entity.Account, error) {
	var record model.AccountModel
	err := r.db.WithContext(ctx).
		Preload("DriverProfile").
		Preload("PassengerProfile").
		First(&record, "refresh_token_hash = ?", tokenHash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by refresh token")
	}

	return accountToDomain(&record), nil
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	record := accountFromDomain(account)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueViolation(err, "email") {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create account")
	}

	// Backfill store-generated values onto the domain entity.
	account.ID = record.ID
	account.CreatedAt = record.CreatedAt
	account.UpdatedAt = record.UpdatedAt
	if account.DriverProfile != nil && record.DriverProfile != nil {
		account.DriverProfile.AccountID = record.DriverProfile.AccountID
	}
	if account.PassengerProfile != nil && record.PassengerProfile != nil {
		account.PassengerProfile.AccountID = record.PassengerProfile.AccountID
	}

	return nil
}

func (r *accountRepository) SetRefreshToken(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt *time.Time) error {
	updates := map[string]any{
		"refresh_token_hash":       nullableHash(tokenHash),
		"refresh_token_expires_at": expiresAt,
	}

	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) RotateRefreshToken(ctx context.Context, accountID uuid.UUID, oldHash, newHash string, expiresAt time.Time) error {
	// The WHERE clause makes the replace conditional on the old token still
	// being in place. Concurrent rotations race on this single statement and
	// the database picks exactly one winner.
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND refresh_token_hash = ?", accountID, oldHash).
		Updates(map[string]any{
			"refresh_token_hash":       newHash,
			"refresh_token_expires_at": expiresAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to rotate refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenStale
	}

	return nil
}

func (r *accountRepository) UpdatePasswordHash(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	var records []model.AccountModel
	err := r.db.WithContext(ctx).
		Preload("DriverProfile").
		Preload("PassengerProfile").
		Where("role = ?", role.String()).
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by role")
	}

	accounts := make([]*entity.Account, 0, len(records))
	for i := range records {
		accounts = append(accounts, accountToDomain(&records[i]))
	}

	return accounts, nil
}

func nullableHash(hash string) *string {
	if hash == "" {
		return nil
	}

	return &hash
}

func accountToDomain(record *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:                    record.ID,
		Email:                 record.Email,
		Name:                  record.Name,
		Role:                  entity.Role(record.Role),
		PasswordHash:          record.PasswordHash,
		RefreshTokenExpiresAt: record.RefreshTokenExpiresAt,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}
	if record.RefreshTokenHash != nil {
		account.RefreshTokenHash = *record.RefreshTokenHash
	}
	if record.DriverProfile != nil {
		account.DriverProfile = &entity.DriverProfile{
			AccountID: record.DriverProfile.AccountID,
			Licence:   record.DriverProfile.Licence,
			Phone:     record.DriverProfile.Phone,
			UpdatedAt: record.DriverProfile.UpdatedAt,
		}
	}
	if record.PassengerProfile != nil {
		account.PassengerProfile = &entity.PassengerProfile{
			AccountID: record.PassengerProfile.AccountID,
			Phone:     record.PassengerProfile.Phone,
			UpdatedAt: record.PassengerProfile.UpdatedAt,
		}
	}

	return account
}

func accountFromDomain(account *entity.Account) *model.AccountModel {
	record := &model.AccountModel{
		ID:                    account.ID,
		Email:                 account.Email,
		Name:                  account.Name,
		Role:                  account.Role.String(),
		PasswordHash:          account.PasswordHash,
		RefreshTokenHash:      nullableHash(account.RefreshTokenHash),
		RefreshTokenExpiresAt: account.RefreshTokenExpiresAt,
		CreatedAt:             account.CreatedAt,
		UpdatedAt:             account.UpdatedAt,
	}
	if account.DriverProfile != nil {
		record.DriverProfile = &model.DriverProfileModel{
			AccountID: account.DriverProfile.AccountID,
			Licence:   account.DriverProfile.Licence,
			Phone:     account.DriverProfile.Phone,
		}
	}
	if account.PassengerProfile != nil {
		record.PassengerProfile = &model.PassengerProfileModel{
			AccountID: account.PassengerProfile.AccountID,
			Phone:     account.PassengerProfile.Phone,
		}
	}

	return record
}
