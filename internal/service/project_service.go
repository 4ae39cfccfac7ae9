package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio_backend/internal/media"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

// ErrValidation marks a request missing required project fields.
var ErrValidation = errors.New("validation failed")

// ProjectService composes the project store with the media manager: every
// write first resolves the image reference, then persists the record, and
// cleans up any locally-owned file the write superseded.
type ProjectService struct {
	projects repository.Projects
	store    *media.Store
}

func NewProjectService(projects repository.Projects, store *media.Store) *ProjectService {
	return &ProjectService{projects: projects, store: store}
}

var _ Projects = (*ProjectService)(nil)

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int) (models.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Create resolves the image (file payload wins over explicit path), inserts
// the record and returns the new id plus the resolved image reference.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (int, string, error) {
	if err := validateInput(in); err != nil {
		return 0, "", err
	}

	ref, err := s.store.ResolveImage(ctx, in.ImageFile, in.ImagePath, media.Reference{})
	if err != nil {
		return 0, "", err
	}

	id, err := s.projects.Insert(ctx, projectRecord(in, ref))
	if err != nil {
		// The record never made it in; don't leave an orphan upload behind.
		_ = s.store.Remove(ref)
		return 0, "", err
	}
	return id, ref.String(), nil
}

// Update fully replaces the mutable fields. The stored image is kept when the
// request carries neither a file nor an explicit path; when it is replaced and
// the previous reference was a locally-managed file, that file is deleted.
func (s *ProjectService) Update(ctx context.Context, id int, in ProjectInput) (string, error) {
	if err := validateInput(in); err != nil {
		return "", err
	}

	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	previous := media.ParseReference(existing.Image)

	ref, err := s.store.ResolveImage(ctx, in.ImageFile, in.ImagePath, previous)
	if err != nil {
		return "", err
	}

	if err := s.projects.Update(ctx, id, projectRecord(in, ref)); err != nil {
		if ref.String() != previous.String() {
			_ = s.store.Remove(ref)
		}
		return "", err
	}

	// Supersession: the old local file is ours to delete once replaced.
	if ref.String() != previous.String() {
		_ = s.store.Remove(previous)
	}
	return ref.String(), nil
}

// Delete removes the record and, when the image was locally managed, its file.
func (s *ProjectService) Delete(ctx context.Context, id int) error {
	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	return s.store.Remove(media.ParseReference(existing.Image))
}

func validateInput(in ProjectInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	return nil
}

func projectRecord(in ProjectInput, ref media.Reference) models.Project {
	return models.Project{
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Image:       ref.String(),
		Tags:        in.Tags,
		Link:        in.Link,
		SortOrder:   in.SortOrder,
	}
}
