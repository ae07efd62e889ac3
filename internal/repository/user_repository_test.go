package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"simsea/internal/interfaces"
	"simsea/internal/models"
)

func TestCreateUserDuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	err = NewUserRepository(db, noSleepPolicy(nil)).Create(context.Background(), &models.User{Username: "ana", PasswordHash: "x"})
	if !errors.Is(err, interfaces.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken got %v", err)
	}
}

func TestCreateUserDefaultsRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ana", "Ana P", "", "hash", models.RoleUser, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	u := &models.User{Username: "ana", FullName: "Ana P", PasswordHash: "hash"}
	if err := NewUserRepository(db, noSleepPolicy(nil)).Create(context.Background(), u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID != 5 || u.Role != models.RoleUser || u.CreatedAt.IsZero() {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestGetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "username", "full_name", "email", "password_hash", "role", "created_at"}
	mock.ExpectQuery(`FROM users\s+WHERE username = \$1`).WithArgs("root").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), "root", "", "", "hash", "admin", time.Now().UTC()))
	mock.ExpectQuery(`FROM users\s+WHERE username = \$1`).WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(cols))

	repo := NewUserRepository(db, noSleepPolicy(nil))
	u, err := repo.GetByUsername(context.Background(), "root")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if !u.Actor().IsAdmin() {
		t.Fatalf("expected admin, got %+v", u)
	}

	if _, err := repo.GetByUsername(context.Background(), "ghost"); !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
