package auth

import (
	"log/slog"
)

const (
	// BootstrapUsername/BootstrapPassword seed the very first admin account
	// when the users table is empty. Rotate immediately in real deployments.
	BootstrapUsername = "admin"
	BootstrapPassword = "admin"
)

// Service owns credential verification, registration, bootstrap and token
// issuance.
type Service struct {
	repo       RepositoryAPI
	tokenGen   TokenGeneratorAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, tokenGen TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost < 12 {
		bcryptCost = 12
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:       repo,
		tokenGen:   tokenGen,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Authenticate validates credentials and returns a signed token plus the
// account. The failure is identical for an unknown username and a wrong
// password so callers cannot enumerate usernames.
func (s *Service) Authenticate(dto LoginDTO) (string, *Account, error) {
	if err := dto.Validate(); err != nil {
		return "", nil, err
	}

	storedHash, account, err := s.repo.GetCredentials(dto.Username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(storedHash, dto.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := s.tokenGen.GenerateToken(account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

// Register creates a new account with the lowest-privilege role. The plaintext
// password exists only long enough to be hashed.
func (s *Service) Register(dto RegisterDTO) (*Account, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.CreateAccount(dto.Username, hash, RoleUser)
	if err != nil {
		return nil, err
	}

	s.logger.Info("account registered", "user_id", account.ID, "username", account.Username)
	return account, nil
}

// ValidateAccessToken validates a bearer token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateToken(tokenString)
}

func (s *Service) GetAccountByID(id int64) (*Account, error) {
	return s.repo.GetAccountByID(id)
}

// Bootstrap seeds a single admin account when the users table is empty.
// Idempotent: a non-empty table makes it a no-op.
func (s *Service) Bootstrap() error {
	count, err := s.repo.CountAccounts()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := HashPassword(BootstrapPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	account, err := s.repo.CreateAccount(BootstrapUsername, hash, RoleAdmin)
	if err != nil {
		// Another instance may have bootstrapped concurrently.
		if err == ErrDuplicateUsername {
			return nil
		}
		return err
	}

	s.logger.Warn("bootstrapped default admin account, rotate its password immediately",
		"user_id", account.ID,
		"username", account.Username)
	return nil
}
