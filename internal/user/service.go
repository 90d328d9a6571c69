package user

import (
	"log/slog"

	"github.com/frahmantamala/facility-management/internal/auth"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]*Account, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Account, error) {
	return s.repo.GetByID(id)
}

// Update applies a partial update to an account. Role changes are validated
// against the role enumeration before touching storage.
func (s *Service) Update(id int64, dto UpdateUserDTO) (*Account, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Username != nil {
		account.Username = *dto.Username
	}
	if dto.Role != nil {
		account.Role = auth.Role(*dto.Role)
	}

	if err := s.repo.Update(account); err != nil {
		return nil, err
	}

	s.logger.Info("account updated", "user_id", account.ID, "role", account.Role)
	return account, nil
}

// Delete removes an account. An admin deleting their own account is refused
// so the system can never lose its last administrator by accident.
func (s *Service) Delete(id, actorID int64) error {
	if id == actorID {
		return ErrSelfDelete
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("account deleted", "user_id", id, "deleted_by", actorID)
	return nil
}
