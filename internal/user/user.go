package user

import (
	"errors"
	"time"

	"github.com/frahmantamala/facility-management/internal/auth"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrSelfDelete = errors.New("cannot delete own account")
)

// Account is the administrative view of a user. It mirrors auth.Account but
// lives here so user administration does not reach into the auth domain.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      auth.Role `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceAPI interface {
	List() ([]*Account, error)
	GetByID(id int64) (*Account, error)
	Update(id int64, dto UpdateUserDTO) (*Account, error)
	Delete(id, actorID int64) error
}

type RepositoryAPI interface {
	GetAll() ([]*Account, error)
	GetByID(id int64) (*Account, error)
	Update(account *Account) error
	Delete(id int64) error
}
