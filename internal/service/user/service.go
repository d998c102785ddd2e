package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"modernshop/internal/domain"
)

// ErrInvalidCredentials is returned when a username/password pair does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Service stores users with bcrypt-hashed passwords.
type Service struct {
	repo        userRepo
	cost        int
	passwordMin int
}

func New(repo userRepo) *Service {
	return &Service{repo: repo, cost: bcrypt.DefaultCost, passwordMin: 8}
}

// Create hashes password and stores the user. domain.ErrAlreadyExists is
// returned for a taken username.
func (s *Service) Create(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "username", Message: "is required"}}}
	}
	if err := validatePassword(password, s.passwordMin); err != nil {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "password", Message: err.Error()}}}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(ctx, domain.User{Username: username, Password: string(hashed)})
}

// EnsureExists creates the user unless the username is already taken, in which
// case the stored user is returned unchanged.
func (s *Service) EnsureExists(ctx context.Context, username, password string) (*domain.User, bool, error) {
	u, err := s.Create(ctx, username, password)
	if err == nil {
		return u, true, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, false, err
	}
	existing, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Verify checks password against the stored hash.
func (s *Service) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func validatePassword(p string, min int) error {
	trimmed := strings.TrimSpace(p)
	if len(trimmed) < min {
		return fmt.Errorf("must be at least %d characters", min)
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range trimmed {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("must contain at least 1 uppercase letter, 1 lowercase letter, and 1 number")
	}
	return nil
}
