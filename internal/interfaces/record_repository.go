package interfaces

import (
	"context"

	"simsea/internal/models"
)

// RecordFilter defines the filter criteria for listing project records
type RecordFilter struct {
	People    string // case-insensitive substring of people_nationality
	Country   string // exact match
	CreatedBy string // case-insensitive substring of created_by
	// OwnerOnly turns CreatedBy into an exact match, used to scope non-admins.
	OwnerOnly bool
	Limit     int
	Offset    int
}

// RecordRepository defines the persistence operations for project records
type RecordRepository interface {
	Create(ctx context.Context, record *models.ProjectRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ProjectRecord, error)
	List(ctx context.Context, filter RecordFilter) ([]models.ProjectRecord, error)
	Count(ctx context.Context, filter RecordFilter) (int, error)
	Update(ctx context.Context, id int64, record *models.ProjectRecord, actor models.Actor) error
	Delete(ctx context.Context, id int64, actor models.Actor) error
}

// UserRepository defines the persistence operations for user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int, error)
	ListAll(ctx context.Context) ([]models.User, error)
}
