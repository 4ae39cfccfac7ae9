package service

import (
	"context"
	"errors"
	"mime/multipart"

	"portfolio_backend/internal/media"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

// ResumeService keeps the single resume file and the setting row pointing at
// it in sync. The file lives in a fixed slot, so a new upload always replaces
// the previous one in place.
type ResumeService struct {
	settings repository.Settings
	store    *media.Store
}

func NewResumeService(settings repository.Settings, store *media.Store) *ResumeService {
	return &ResumeService{settings: settings, store: store}
}

var _ Resume = (*ResumeService)(nil)

// Upload validates the extension, stores the file and records its path.
func (s *ResumeService) Upload(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	ref, err := s.store.SaveResume(fh)
	if err != nil {
		return "", err
	}
	if err := s.settings.Upsert(ctx, models.SettingResumePath, ref.String()); err != nil {
		return "", err
	}
	return ref.String(), nil
}

// Current reports whether a resume exists and where it is served from.
func (s *ResumeService) Current(ctx context.Context) (string, bool, error) {
	path, err := s.settings.Get(ctx, models.SettingResumePath)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return path, true, nil
}

// Delete removes the backing file first, then the setting row.
func (s *ResumeService) Delete(ctx context.Context) error {
	path, err := s.settings.Get(ctx, models.SettingResumePath)
	if err != nil {
		return err
	}
	if err := s.store.Remove(media.ParseReference(path)); err != nil {
		return err
	}
	return s.settings.Delete(ctx, models.SettingResumePath)
}
