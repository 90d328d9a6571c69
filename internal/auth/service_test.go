package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frahmantamala/facility-management/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// MockRepository implements auth.RepositoryAPI for testing
type MockRepository struct {
	accounts map[string]*mockAccount
	nextID   int64
	failErr  error
}

type mockAccount struct {
	account *auth.Account
	hash    string
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		accounts: make(map[string]*mockAccount),
		nextID:   1,
	}
}

func (m *MockRepository) GetCredentials(username string) (string, *auth.Account, error) {
	if m.failErr != nil {
		return "", nil, m.failErr
	}
	entry, ok := m.accounts[username]
	if !ok {
		return "", nil, auth.ErrAccountNotFound
	}
	return entry.hash, entry.account, nil
}

func (m *MockRepository) CreateAccount(username, passwordHash string, role auth.Role) (*auth.Account, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	if _, exists := m.accounts[username]; exists {
		return nil, auth.ErrDuplicateUsername
	}
	account := &auth.Account{
		ID:        m.nextID,
		Username:  username,
		Role:      role,
		CreatedAt: time.Now(),
	}
	m.nextID++
	m.accounts[username] = &mockAccount{account: account, hash: passwordHash}
	return account, nil
}

func (m *MockRepository) GetAccountByID(id int64) (*auth.Account, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	for _, entry := range m.accounts {
		if entry.account.ID == id {
			return entry.account, nil
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (m *MockRepository) CountAccounts() (int64, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	return int64(len(m.accounts)), nil
}

func (m *MockRepository) AddAccount(username, password string, role auth.Role) *auth.Account {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	account := &auth.Account{
		ID:        m.nextID,
		Username:  username,
		Role:      role,
		CreatedAt: time.Now(),
	}
	m.nextID++
	m.accounts[username] = &mockAccount{account: account, hash: string(hash)}
	return account
}

var _ = Describe("Auth Service", func() {
	var (
		mockRepo *MockRepository
		tokenGen *auth.JWTTokenGenerator
		service  *auth.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		tokenGen = auth.NewJWTTokenGenerator("test-secret", time.Hour)
		testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(mockRepo, tokenGen, 12, testLogger)
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			mockRepo.AddAccount("alice", "secret123", auth.RoleManager)
		})

		Context("with valid credentials", func() {
			It("should return a token carrying the account identity", func() {
				token, account, err := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "secret123"})
				Expect(err).NotTo(HaveOccurred())
				Expect(token).NotTo(BeEmpty())
				Expect(account.Username).To(Equal("alice"))
				Expect(account.Role).To(Equal(auth.RoleManager))

				claims, err := tokenGen.ValidateToken(token)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims.UserID).To(Equal(account.ID))
				Expect(claims.Username).To(Equal("alice"))
				Expect(claims.Role).To(Equal(auth.RoleManager))
			})
		})

		Context("with a wrong password", func() {
			It("should fail with invalid credentials", func() {
				_, _, err := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "wrong"})
				Expect(err).To(MatchError(auth.ErrInvalidCredentials))
			})
		})

		Context("with an unknown username", func() {
			It("should fail with the same error as a wrong password", func() {
				_, _, wrongPassErr := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "wrong"})
				_, _, unknownErr := service.Authenticate(auth.LoginDTO{Username: "nobody", Password: "secret123"})
				Expect(unknownErr).To(Equal(wrongPassErr))
			})
		})

		Context("with missing fields", func() {
			It("should fail validation when username is empty", func() {
				_, _, err := service.Authenticate(auth.LoginDTO{Password: "secret123"})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("username"))
			})

			It("should fail validation when password is empty", func() {
				_, _, err := service.Authenticate(auth.LoginDTO{Username: "alice"})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("password"))
			})
		})
	})

	Describe("Register", func() {
		It("should create an account with the lowest-privilege role", func() {
			account, err := service.Register(auth.RegisterDTO{Username: "bob", Password: "hunter22"})
			Expect(err).NotTo(HaveOccurred())
			Expect(account.Role).To(Equal(auth.RoleUser))
		})

		It("should store a hash that verifies against the original password", func() {
			_, err := service.Register(auth.RegisterDTO{Username: "bob", Password: "hunter22"})
			Expect(err).NotTo(HaveOccurred())

			hash, _, err := mockRepo.GetCredentials("bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).NotTo(Equal("hunter22"))
			Expect(auth.VerifyPassword(hash, "hunter22")).To(Succeed())
		})

		Context("when the username is taken", func() {
			BeforeEach(func() {
				mockRepo.AddAccount("bob", "other", auth.RoleUser)
			})

			It("should fail with duplicate username", func() {
				_, err := service.Register(auth.RegisterDTO{Username: "bob", Password: "hunter22"})
				Expect(err).To(MatchError(auth.ErrDuplicateUsername))
			})
		})
	})

	Describe("ValidateAccessToken", func() {
		It("should reject a token signed with a different secret", func() {
			otherGen := auth.NewJWTTokenGenerator("other-secret", time.Hour)
			account := mockRepo.AddAccount("alice", "secret123", auth.RoleAdmin)
			token, _, err := otherGen.GenerateToken(account)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("should reject an expired token", func() {
			expiredGen := auth.NewJWTTokenGenerator("test-secret", time.Hour)
			expiredGen.TokenTTL = -time.Minute
			account := mockRepo.AddAccount("alice", "secret123", auth.RoleAdmin)
			token, _, err := expiredGen.GenerateToken(account)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(MatchError(auth.ErrTokenExpired))
		})

		It("should reject garbage input", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})
	})

	Describe("Bootstrap", func() {
		Context("when the account table is empty", func() {
			It("should seed a single admin account", func() {
				Expect(service.Bootstrap()).To(Succeed())

				hash, account, err := mockRepo.GetCredentials(auth.BootstrapUsername)
				Expect(err).NotTo(HaveOccurred())
				Expect(account.Role).To(Equal(auth.RoleAdmin))
				Expect(auth.VerifyPassword(hash, auth.BootstrapPassword)).To(Succeed())
			})
		})

		Context("when accounts already exist", func() {
			BeforeEach(func() {
				mockRepo.AddAccount("existing", "pw", auth.RoleUser)
			})

			It("should do nothing", func() {
				Expect(service.Bootstrap()).To(Succeed())
				_, _, err := mockRepo.GetCredentials(auth.BootstrapUsername)
				Expect(err).To(MatchError(auth.ErrAccountNotFound))
			})
		})

		It("should be idempotent across repeated calls", func() {
			Expect(service.Bootstrap()).To(Succeed())
			Expect(service.Bootstrap()).To(Succeed())
			count, err := mockRepo.CountAccounts()
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})
	})
})
