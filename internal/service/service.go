package service

import (
	"context"
	"mime/multipart"

	"portfolio_backend/internal/media"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

// ProjectInput carries everything a create/update request may supply.
// ImageFile wins over ImagePath; with neither, an update keeps the stored image.
type ProjectInput struct {
	Title       string
	Category    string
	Description string
	Tags        []string
	Link        string
	SortOrder   int
	ImageFile   *multipart.FileHeader
	ImagePath   string
}

type Authorization interface {
	Login(username, password string) (token, name string, err error)
	ParseToken(accessToken string) (Identity, error)
	ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error
}

// Projects exposes the CRUD surface over project records, including image
// resolution and cleanup of superseded local files.
type Projects interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int) (models.Project, error)
	Create(ctx context.Context, in ProjectInput) (id int, image string, err error)
	Update(ctx context.Context, id int, in ProjectInput) (image string, err error)
	Delete(ctx context.Context, id int) error
}

// Resume manages the single fixed resume slot.
type Resume interface {
	Upload(ctx context.Context, fh *multipart.FileHeader) (path string, err error)
	Current(ctx context.Context) (path string, exists bool, err error)
	Delete(ctx context.Context) error
}

type Service struct {
	Authorization
	Projects
	Resume
}

func NewService(repos *repository.Repository, store *media.Store, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, authCfg),
		Projects:      NewProjectService(repos.Projects, store),
		Resume:        NewResumeService(repos.Settings, store),
	}
}
