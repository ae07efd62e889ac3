package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus/hooks/test"

	"simsea/internal/models"
	"simsea/internal/repository"
	"simsea/internal/services"
)

func TestListUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, username, full_name, email, role, created_at\s+FROM users\s+ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name", "email", "role", "created_at"}).
			AddRow(int64(1), "root", "Administrator", "", models.RoleAdmin, now).
			AddRow(int64(2), "ana", "Ana", "ana@example.org", models.RoleUser, now))

	logger, _ := test.NewNullLogger()
	accounts := services.NewAccountService(repository.NewUserRepository(db, repository.DefaultRetryPolicy(logger)), logger)
	h := NewUserHandler(accounts, logger)

	w := httptest.NewRecorder()
	h.ListUsers(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var users []models.User
	if err := json.Unmarshal(w.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 || users[1].Username != "ana" {
		t.Fatalf("unexpected users %+v", users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListUsersEmptyIsArray(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name", "email", "role", "created_at"}))

	logger, _ := test.NewNullLogger()
	h := NewUserHandler(services.NewAccountService(repository.NewUserRepository(db, repository.DefaultRetryPolicy(logger)), logger), logger)

	w := httptest.NewRecorder()
	h.ListUsers(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	if body := w.Body.String(); body != "[]\n" {
		t.Fatalf("expected [], got %q", body)
	}
}
