package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ananyac/lifelink/backend/internal/domain"
)

// Sentinel errors callers branch on to pick an HTTP status.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	TokenType   string
	Role        string
	FullName    string
}

// AuthService handles account registration and token issuance.
type AuthService struct {
	repo     GraphRepository
	secret   []byte
	tokenTTL time.Duration
	nowFn    func() time.Time
}

// NewAuthService constructs an AuthService signing tokens with secret.
func NewAuthService(repo GraphRepository, secret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		nowFn:    time.Now,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (s *AuthService) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		s.nowFn = nowFn
	}
}

// Register creates a new account. The password is stored as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("a valid email is required")
	}
	if input.Password == "" {
		return domain.User{}, fmt.Errorf("password is required")
	}

	role := strings.ToUpper(strings.TrimSpace(input.Role))
	if role == "" {
		role = domain.RolePatient
	}
	switch role {
	case domain.RolePatient, domain.RoleDonor, domain.RoleAdmin:
	default:
		return domain.User{}, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	existing, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if existing != nil {
		return domain.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     sanitizeString(input.FullName),
		Role:         role,
		CreatedAt:    s.nowFn().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login verifies the credentials and issues a signed bearer token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.repo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return Session{}, err
	}
	if user == nil {
		return Session{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	now := s.nowFn().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(s.tokenTTL).Unix(),
		"iat":  now.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}

	return Session{
		AccessToken: signed,
		TokenType:   "bearer",
		Role:        user.Role,
		FullName:    user.FullName,
	}, nil
}
