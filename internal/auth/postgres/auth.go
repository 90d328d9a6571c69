package postgres

import (
	"errors"

	"github.com/frahmantamala/facility-management/internal/auth"
	userDatamodel "github.com/frahmantamala/facility-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.RepositoryAPI {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetCredentials(username string) (string, *auth.Account, error) {
	var record userDatamodel.Account
	err := r.db.Where("username = ?", username).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, auth.ErrAccountNotFound
		}
		return "", nil, err
	}
	return record.PasswordHash, toDomain(&record), nil
}

func (r *AuthRepository) CreateAccount(username, passwordHash string, role auth.Role) (*auth.Account, error) {
	record := &userDatamodel.Account{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         string(role),
	}
	if err := r.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, auth.ErrDuplicateUsername
		}
		return nil, err
	}
	return toDomain(record), nil
}

func (r *AuthRepository) GetAccountByID(id int64) (*auth.Account, error) {
	var record userDatamodel.Account
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return toDomain(&record), nil
}

func (r *AuthRepository) CountAccounts() (int64, error) {
	var count int64
	err := r.db.Model(&userDatamodel.Account{}).Count(&count).Error
	return count, err
}

func toDomain(record *userDatamodel.Account) *auth.Account {
	return &auth.Account{
		ID:        record.ID,
		Username:  record.Username,
		Role:      auth.Role(record.Role),
		CreatedAt: record.CreatedAt,
	}
}
