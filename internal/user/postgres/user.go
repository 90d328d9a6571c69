package postgres

import (
	"errors"

	"github.com/frahmantamala/facility-management/internal/auth"
	userDatamodel "github.com/frahmantamala/facility-management/internal/core/datamodel/user"
	"github.com/frahmantamala/facility-management/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll() ([]*user.Account, error) {
	var records []*userDatamodel.Account
	if err := r.db.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	accounts := make([]*user.Account, 0, len(records))
	for _, record := range records {
		accounts = append(accounts, toDomain(record))
	}
	return accounts, nil
}

func (r *UserRepository) GetByID(id int64) (*user.Account, error) {
	var record userDatamodel.Account
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return toDomain(&record), nil
}

func (r *UserRepository) Update(account *user.Account) error {
	result := r.db.Model(&userDatamodel.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"username": account.Username,
			"role":     string(account.Role),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&userDatamodel.Account{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func toDomain(record *userDatamodel.Account) *user.Account {
	return &user.Account{
		ID:        record.ID,
		Username:  record.Username,
		Role:      auth.Role(record.Role),
		CreatedAt: record.CreatedAt,
	}
}
