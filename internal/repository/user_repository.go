package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"simsea/internal/interfaces"
	"simsea/internal/models"
)

type userRepository struct {
	db    *sql.DB
	retry RetryPolicy
}

func NewUserRepository(db *sql.DB, retry RetryPolicy) interfaces.UserRepository {
	return &userRepository{db: db, retry: retry}
}

const uniqueViolation = pq.ErrorCode("23505")

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, full_name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	return r.retry.Do(ctx, "create user", func(ctx context.Context) error {
		err := r.db.QueryRowContext(ctx, query,
			user.Username, user.FullName, user.Email, user.PasswordHash, user.Role, user.CreatedAt,
		).Scan(&user.ID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return interfaces.ErrUsernameTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, full_name, email, password_hash, role, created_at
		FROM users
		WHERE username = $1
	`

	var u models.User
	err := r.retry.Do(ctx, "get user", func(ctx context.Context) error {
		err := r.db.QueryRowContext(ctx, query, username).Scan(
			&u.ID, &u.Username, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return interfaces.ErrNotFound
			}
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.retry.Do(ctx, "count users", func(ctx context.Context) error {
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		return nil
	})
	return count, err
}

func (r *userRepository) ListAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, username, full_name, email, role, created_at
		FROM users
		ORDER BY id
	`

	var users []models.User
	err := r.retry.Do(ctx, "list users", func(ctx context.Context) error {
		users = users[:0]
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var u models.User
			if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.Role, &u.CreatedAt); err != nil {
				return fmt.Errorf("scan user: %w", err)
			}
			users = append(users, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
