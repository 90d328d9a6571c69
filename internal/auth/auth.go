package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Role is the closed set of privilege levels an account can hold. Routes
// declare an allow-list of roles; authorization is plain set membership.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleSales     Role = "sales"
	RoleMarketing Role = "marketing"
	RoleOperator  Role = "operator"
	RoleOperation Role = "operation"
	RoleFinance   Role = "finance"
	RoleHR        Role = "hr"
	RoleSupport   Role = "support"
	// RoleUser is the lowest-privilege default assigned on self-registration.
	RoleUser Role = "user"
)

var knownRoles = map[Role]struct{}{
	RoleAdmin:     {},
	RoleManager:   {},
	RoleSales:     {},
	RoleMarketing: {},
	RoleOperator:  {},
	RoleOperation: {},
	RoleFinance:   {},
	RoleHR:        {},
	RoleSupport:   {},
	RoleUser:      {},
}

// ValidRole reports whether the value is a member of the role enumeration.
func ValidRole(r Role) bool {
	_, ok := knownRoles[r]
	return ok
}

// Account is the identity shape returned by login/register/verify responses.
// The password hash never leaves the repository layer.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (token string, account *Account, err error)
	Register(dto RegisterDTO) (*Account, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetAccountByID(id int64) (*Account, error)
	Bootstrap() error
}

type RepositoryAPI interface {
	GetCredentials(username string) (passwordHash string, account *Account, err error)
	CreateAccount(username, passwordHash string, role Role) (*Account, error)
	GetAccountByID(id int64) (*Account, error)
	CountAccounts() (int64, error)
}

// Claims carries the identity encoded into each bearer token.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}

type TokenGeneratorAPI interface {
	GenerateToken(account *Account) (token string, expiresAt time.Time, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

// JWTTokenGenerator signs and verifies HS256 tokens with a process-wide secret.
type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAccountNotFound    = errors.New("account not found")
)

// GenerateToken issues a signed token carrying id, username and role.
func (j *JWTTokenGenerator) GenerateToken(account *Account) (string, time.Time, error) {
	if account == nil || account.ID == 0 {
		return "", time.Time{}, errors.New("invalid account for token generation")
	}

	now := time.Now()
	expiresAt := now.Add(j.TokenTTL)

	claims := &Claims{
		UserID:   account.ID,
		Username: account.Username,
		Role:     account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", account.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies signature, shape and expiry. Verification is
// all-or-nothing: any failure yields no claims at all.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
