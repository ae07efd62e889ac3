package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"simsea/internal/interfaces"
	"simsea/internal/models"
	"simsea/internal/validation"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AccountService owns password hashing for user accounts.
type AccountService struct {
	users     interfaces.UserRepository
	validator *validation.Validator
	logger    logrus.FieldLogger
	cost      int

	dummyOnce sync.Once
	dummyHash []byte
}

const maxPasswordBytes = 72

func NewAccountService(users interfaces.UserRepository, logger logrus.FieldLogger) *AccountService {
	return &AccountService{
		users:     users,
		validator: validation.New(),
		logger:    logger,
		cost:      bcrypt.DefaultCost,
	}
}

// Register validates req and stores a new account with the given role.
func (s *AccountService) Register(ctx context.Context, req models.RegisterRequest, role string) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(&req); err != nil {
		return nil, err
	}
	// bcrypt reads at most 72 bytes; multibyte passwords can pass the rune count.
	if len(req.Password) > maxPasswordBytes {
		return nil, &interfaces.ValidationError{Fields: map[string]string{
			"password": fmt.Sprintf("must be at most %d bytes", maxPasswordBytes),
		}}
	}
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks a username and password. Unknown users still pay for a
// bcrypt comparison so both failures take similar time.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AccountService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("simsea-dummy-password"), s.cost)
	})
	return s.dummyHash
}

// EnsureAdmin creates the bootstrap admin account when no users exist yet.
func (s *AccountService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	admin := &models.User{
		Username:     username,
		FullName:     "Administrator",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, interfaces.ErrUsernameTaken) {
			return false, nil
		}
		return false, err
	}

	if s.logger != nil {
		s.logger.WithField("username", username).Warn("created default admin account, change its password")
	}
	return true, nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListAll(ctx)
}
