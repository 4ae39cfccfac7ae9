package repository

import (
	"context"
	"database/sql"
	"errors"

	"portfolio_backend/internal/models"
)

// ErrNotFound signals an id/key lookup miss on any table.
var ErrNotFound = errors.New("record not found")

type Projects interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int) (models.Project, error)
	Insert(ctx context.Context, p models.Project) (int, error)
	Update(ctx context.Context, id int, p models.Project) error
	Delete(ctx context.Context, id int) error
}

type Users interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	UpdatePassword(id int, hash string) error
}

type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Repository struct {
	Projects Projects
	Users    Users
	Settings Settings
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Projects: NewProjectSQLite(db),
		Users:    NewUserRepository(db),
		Settings: NewSettingSQLite(db),
	}
}
