package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"simsea/internal/interfaces"
	"simsea/internal/models"
)

type memUserRepo struct {
	users  map[string]*models.User
	nextID int64
	err    error
}

var _ interfaces.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.Username]; ok {
		return interfaces.ErrUsernameTaken
	}
	m.nextID++
	user.ID = m.nextID
	u := *user
	m.users[user.Username] = &u
	return nil
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[username]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) Count(ctx context.Context) (int, error) {
	return len(m.users), m.err
}

func (m *memUserRepo) ListAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, m.err
}

func newTestAccounts(repo *memUserRepo) *AccountService {
	logger, _ := test.NewNullLogger()
	s := NewAccountService(repo, logger)
	s.cost = bcrypt.MinCost
	return s
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newMemUserRepo()
	s := newTestAccounts(repo)

	u, err := s.Register(context.Background(), models.RegisterRequest{Username: " ana ", Password: "secreto123", FullName: "Ana"}, "")
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.NotEqual(t, "secreto123", repo.users["ana"].PasswordHash)

	got, err := s.Authenticate(context.Background(), "ana", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate(context.Background(), "ana", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate(context.Background(), "nobody", "secreto123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestAccounts(newMemUserRepo())
	_, err := s.Register(context.Background(), models.RegisterRequest{Username: "ab", Password: "short"}, models.RoleUser)

	var verr *interfaces.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")
}

func TestRegisterRejectsPasswordBeyondBcryptLimit(t *testing.T) {
	repo := newMemUserRepo()
	s := newTestAccounts(repo)
	// 40 runes pass the length tag but take 80 bytes.
	_, err := s.Register(context.Background(), models.RegisterRequest{Username: "ana", Password: strings.Repeat("ñ", 40)}, models.RoleUser)

	var verr *interfaces.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at most 72 bytes", verr.Fields["password"])
	assert.Empty(t, repo.users)
}

func TestRegisterDuplicate(t *testing.T) {
	s := newTestAccounts(newMemUserRepo())
	req := models.RegisterRequest{Username: "ana", Password: "secreto123"}
	_, err := s.Register(context.Background(), req, models.RoleUser)
	require.NoError(t, err)
	_, err = s.Register(context.Background(), req, models.RoleUser)
	assert.ErrorIs(t, err, interfaces.ErrUsernameTaken)
}

func TestAuthenticateStorageErrorIsNotInvalidCredentials(t *testing.T) {
	repo := newMemUserRepo()
	repo.err = interfaces.ErrStorageUnavailable
	_, err := newTestAccounts(repo).Authenticate(context.Background(), "ana", "x")
	assert.True(t, errors.Is(err, interfaces.ErrStorageUnavailable))
}

func TestEnsureAdminOnlyOnEmptyTable(t *testing.T) {
	repo := newMemUserRepo()
	s := newTestAccounts(repo)

	created, err := s.EnsureAdmin(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleAdmin, repo.users["admin"].Role)

	created, err = s.EnsureAdmin(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.users, 1)

	_, err = s.Authenticate(context.Background(), "admin", "admin")
	assert.NoError(t, err)
}
