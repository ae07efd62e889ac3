package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"simsea/internal/calc"
	"simsea/internal/guard"
	"simsea/internal/interfaces"
	"simsea/internal/models"
	"simsea/internal/validation"
)

type recordRepository struct {
	db        *sql.DB
	retry     RetryPolicy
	validator *validation.Validator
	now       func() time.Time
}

func NewRecordRepository(db *sql.DB, retry RetryPolicy) interfaces.RecordRepository {
	return &recordRepository{
		db:        db,
		retry:     retry,
		validator: validation.New(),
		now:       time.Now,
	}
}

var selectRecordColumns = strings.Join(models.RecordColumns(), ", ")

func placeholders(n, from int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ph, ", ")
}

// prepare recomputes derived fields and validates. Nothing is written when it fails.
func (r *recordRepository) prepare(rec *models.ProjectRecord) (models.ProjectRecord, error) {
	derived := calc.Derive(*rec)
	if err := r.validator.Record(&derived); err != nil {
		return derived, err
	}
	return derived, nil
}

func (r *recordRepository) Create(ctx context.Context, rec *models.ProjectRecord) (int64, error) {
	derived, err := r.prepare(rec)
	if err != nil {
		return 0, err
	}
	now := r.now().UTC()
	derived.CreatedAt = now
	derived.UpdatedAt = now

	cols := append(models.DataColumns(), models.ProvenanceColumns()...)
	args := append(derived.DataValues(), derived.CreatedBy, derived.CreatedAt, derived.UpdatedAt)
	query := fmt.Sprintf(`INSERT INTO project_records (%s) VALUES (%s) RETURNING id`,
		strings.Join(cols, ", "), placeholders(len(cols), 1))

	var id int64
	err = r.retry.Do(ctx, "create record", func(ctx context.Context) error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback()

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
		return tx.Commit()
	})
	if err != nil {
		return 0, err
	}

	derived.ID = id
	*rec = derived
	return id, nil
}

func (r *recordRepository) GetByID(ctx context.Context, id int64) (*models.ProjectRecord, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM project_records WHERE id = $1`

	var rec models.ProjectRecord
	err := r.retry.Do(ctx, "get record", func(ctx context.Context) error {
		rec = models.ProjectRecord{}
		err := r.db.QueryRowContext(ctx, query, id).Scan(rec.ScanTargets()...)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return interfaces.ErrNotFound
			}
			return fmt.Errorf("get record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	derived := calc.Derive(rec)
	return &derived, nil
}

// escapeLike escapes LIKE metacharacters so filter text matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func buildRecordFilter(filter interfaces.RecordFilter) (string, []any, int) {
	var whereClauses []string
	var args []any
	argPos := 1

	if people := strings.TrimSpace(filter.People); people != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("people_nationality ILIKE $%d", argPos))
		args = append(args, "%"+escapeLike(people)+"%")
		argPos++
	}
	if country := strings.TrimSpace(filter.Country); country != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("country = $%d", argPos))
		args = append(args, country)
		argPos++
	}
	if filter.OwnerOnly {
		whereClauses = append(whereClauses, fmt.Sprintf("created_by = $%d", argPos))
		args = append(args, filter.CreatedBy)
		argPos++
	} else if createdBy := strings.TrimSpace(filter.CreatedBy); createdBy != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("created_by ILIKE $%d", argPos))
		args = append(args, "%"+escapeLike(createdBy)+"%")
		argPos++
	}

	if len(whereClauses) == 0 {
		return "", args, argPos
	}
	return " WHERE " + strings.Join(whereClauses, " AND "), args, argPos
}

func (r *recordRepository) List(ctx context.Context, filter interfaces.RecordFilter) ([]models.ProjectRecord, error) {
	where, args, argPos := buildRecordFilter(filter)
	query := `SELECT ` + selectRecordColumns + ` FROM project_records` + where +
		` ORDER BY created_at DESC, id DESC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filter.Limit)
		argPos++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argPos)
		args = append(args, filter.Offset)
	}

	var records []models.ProjectRecord
	err := r.retry.Do(ctx, "list records", func(ctx context.Context) error {
		records = records[:0]
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var rec models.ProjectRecord
			if err := rows.Scan(rec.ScanTargets()...); err != nil {
				return fmt.Errorf("scan record: %w", err)
			}
			records = append(records, calc.Derive(rec))
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) Count(ctx context.Context, filter interfaces.RecordFilter) (int, error) {
	where, args, _ := buildRecordFilter(filter)
	query := `SELECT COUNT(*) FROM project_records` + where

	var count int
	err := r.retry.Do(ctx, "count records", func(ctx context.Context) error {
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return fmt.Errorf("count records: %w", err)
		}
		return nil
	})
	return count, err
}

// lockOwner locks the row and returns its provenance, or ErrNotFound.
func lockOwner(ctx context.Context, tx *sql.Tx, id int64) (string, time.Time, error) {
	var createdBy string
	var createdAt time.Time
	err := tx.QueryRowContext(ctx,
		`SELECT created_by, created_at FROM project_records WHERE id = $1 FOR UPDATE`, id,
	).Scan(&createdBy, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", time.Time{}, interfaces.ErrNotFound
		}
		return "", time.Time{}, fmt.Errorf("lock record: %w", err)
	}
	return createdBy, createdAt, nil
}

// Update replaces every data column of record id. Provenance is kept; the last
// writer wins.
func (r *recordRepository) Update(ctx context.Context, id int64, rec *models.ProjectRecord, actor models.Actor) error {
	derived, err := r.prepare(rec)
	if err != nil {
		return err
	}
	now := r.now().UTC()

	cols := models.DataColumns()
	sets := make([]string, 0, len(cols)+1)
	for i, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", c, i+1))
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(cols)+1))
	query := fmt.Sprintf(`UPDATE project_records SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(cols)+2)
	args := append(derived.DataValues(), now, id)

	var createdBy string
	var createdAt time.Time
	err = r.retry.Do(ctx, "update record", func(ctx context.Context) error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback()

		createdBy, createdAt, err = lockOwner(ctx, tx, id)
		if err != nil {
			return err
		}
		if !guard.CanMutate(createdBy, actor) {
			return interfaces.ErrPermissionDenied
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update record: %w", err)
		}
		return tx.Commit()
	})
	if err != nil {
		return err
	}

	derived.ID = id
	derived.CreatedBy = createdBy
	derived.CreatedAt = createdAt
	derived.UpdatedAt = now
	*rec = derived
	return nil
}

func (r *recordRepository) Delete(ctx context.Context, id int64, actor models.Actor) error {
	return r.retry.Do(ctx, "delete record", func(ctx context.Context) error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback()

		createdBy, _, err := lockOwner(ctx, tx, id)
		if err != nil {
			return err
		}
		if !guard.CanMutate(createdBy, actor) {
			return interfaces.ErrPermissionDenied
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM project_records WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		return tx.Commit()
	})
}
