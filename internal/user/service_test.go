package user_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frahmantamala/facility-management/internal/auth"
	"github.com/frahmantamala/facility-management/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

// MockRepository implements user.RepositoryAPI for testing
type MockRepository struct {
	accounts map[int64]*user.Account
	failErr  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{accounts: make(map[int64]*user.Account)}
}

func (m *MockRepository) GetAll() ([]*user.Account, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	out := make([]*user.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (m *MockRepository) GetByID(id int64) (*user.Account, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	a, ok := m.accounts[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return a, nil
}

func (m *MockRepository) Update(account *user.Account) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.accounts[account.ID]; !ok {
		return user.ErrNotFound
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.accounts[id]; !ok {
		return user.ErrNotFound
	}
	delete(m.accounts, id)
	return nil
}

func (m *MockRepository) AddAccount(id int64, username string, role auth.Role) {
	m.accounts[id] = &user.Account{
		ID:        id,
		Username:  username,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

func strPtr(s string) *string { return &s }

var _ = Describe("User Service", func() {
	var (
		mockRepo *MockRepository
		service  *user.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(mockRepo, testLogger)
	})

	Describe("Update", func() {
		BeforeEach(func() {
			mockRepo.AddAccount(1, "admin", auth.RoleAdmin)
			mockRepo.AddAccount(2, "bob", auth.RoleUser)
		})

		It("should change the role when it is a known one", func() {
			account, err := service.Update(2, user.UpdateUserDTO{Role: strPtr("manager")})
			Expect(err).NotTo(HaveOccurred())
			Expect(account.Role).To(Equal(auth.RoleManager))
			Expect(account.Username).To(Equal("bob"))
		})

		It("should change the username without touching the role", func() {
			account, err := service.Update(2, user.UpdateUserDTO{Username: strPtr("robert")})
			Expect(err).NotTo(HaveOccurred())
			Expect(account.Username).To(Equal("robert"))
			Expect(account.Role).To(Equal(auth.RoleUser))
		})

		It("should reject an unknown role", func() {
			_, err := service.Update(2, user.UpdateUserDTO{Role: strPtr("superuser")})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown role"))
		})

		It("should reject an empty update", func() {
			_, err := service.Update(2, user.UpdateUserDTO{})
			Expect(err).To(HaveOccurred())
		})

		It("should fail for a missing account", func() {
			_, err := service.Update(99, user.UpdateUserDTO{Role: strPtr("manager")})
			Expect(err).To(MatchError(user.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			mockRepo.AddAccount(1, "admin", auth.RoleAdmin)
			mockRepo.AddAccount(2, "bob", auth.RoleUser)
		})

		It("should refuse deleting the acting account", func() {
			err := service.Delete(1, 1)
			Expect(err).To(MatchError(user.ErrSelfDelete))

			_, getErr := service.GetByID(1)
			Expect(getErr).NotTo(HaveOccurred())
		})

		It("should delete another account and make it unfindable", func() {
			Expect(service.Delete(2, 1)).To(Succeed())

			_, err := service.GetByID(2)
			Expect(err).To(MatchError(user.ErrNotFound))
		})

		It("should fail for a missing account", func() {
			err := service.Delete(99, 1)
			Expect(err).To(MatchError(user.ErrNotFound))
		})
	})
})
