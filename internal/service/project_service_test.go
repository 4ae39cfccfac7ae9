package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"testing"

	"portfolio_backend/internal/media"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"

	"github.com/stretchr/testify/require"
)

// mockProjects is a lightweight in-test mock for repository.Projects.
type mockProjects struct {
	GetFn    func(id int) (models.Project, error)
	InsertFn func(p models.Project) (int, error)
	UpdateFn func(id int, p models.Project) error
	DeleteFn func(id int) error

	inserted []models.Project
	updated  []models.Project
}

func (m *mockProjects) List(ctx context.Context) ([]models.Project, error) { return nil, nil }

func (m *mockProjects) GetByID(ctx context.Context, id int) (models.Project, error) {
	return m.GetFn(id)
}

func (m *mockProjects) Insert(ctx context.Context, p models.Project) (int, error) {
	m.inserted = append(m.inserted, p)
	if m.InsertFn != nil {
		return m.InsertFn(p)
	}
	return 1, nil
}

func (m *mockProjects) Update(ctx context.Context, id int, p models.Project) error {
	m.updated = append(m.updated, p)
	if m.UpdateFn != nil {
		return m.UpdateFn(id, p)
	}
	return nil
}

func (m *mockProjects) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	return nil
}

func uploadHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 4096)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func newTestProjectService(t *testing.T, repo *mockProjects) (*ProjectService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := media.NewStore(dir, nil, nil)
	require.NoError(t, err)
	return NewProjectService(repo, store), dir
}

func TestProjectService_Create_Validation(t *testing.T) {
	svc, _ := newTestProjectService(t, &mockProjects{})

	_, _, err := svc.Create(context.Background(), ProjectInput{Category: "Test"})
	require.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.Create(context.Background(), ProjectInput{Title: "Demo"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestProjectService_Create_ImagePathPassthrough(t *testing.T) {
	repo := &mockProjects{InsertFn: func(models.Project) (int, error) { return 9, nil }}
	svc, dir := newTestProjectService(t, repo)

	id, image, err := svc.Create(context.Background(), ProjectInput{
		Title: "Demo", Category: "Test", SortOrder: 5,
		ImagePath: "https://host/x.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, 9, id)
	require.Equal(t, "https://host/x.jpg", image)

	require.Len(t, repo.inserted, 1)
	require.Equal(t, "https://host/x.jpg", repo.inserted[0].Image)
	require.Equal(t, 5, repo.inserted[0].SortOrder)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "passthrough must not write files")
}

func TestProjectService_Create_FileWinsOverPath(t *testing.T) {
	repo := &mockProjects{}
	svc, dir := newTestProjectService(t, repo)

	_, image, err := svc.Create(context.Background(), ProjectInput{
		Title: "Demo", Category: "Test",
		ImageFile: uploadHeader(t, "shot.png", []byte("img")),
		ImagePath: "https://host/ignored.jpg",
	})
	require.NoError(t, err)
	require.True(t, media.ParseReference(image).Local())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestProjectService_Create_InsertFailureCleansUpload(t *testing.T) {
	repo := &mockProjects{InsertFn: func(models.Project) (int, error) { return 0, errors.New("db down") }}
	svc, dir := newTestProjectService(t, repo)

	_, _, err := svc.Create(context.Background(), ProjectInput{
		Title: "Demo", Category: "Test",
		ImageFile: uploadHeader(t, "shot.png", []byte("img")),
	})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "failed insert must not leave orphan uploads")
}

func TestProjectService_Update_KeepsImageWhenNoneSupplied(t *testing.T) {
	repo := &mockProjects{
		GetFn: func(int) (models.Project, error) {
			return models.Project{ID: 1, Image: "/uploads/old.png"}, nil
		},
	}
	svc, dir := newTestProjectService(t, repo)

	// The existing file must survive the update untouched.
	require.NoError(t, os.WriteFile(dir+"/old.png", []byte("x"), 0o644))

	image, err := svc.Update(context.Background(), 1, ProjectInput{Title: "T", Category: "C"})
	require.NoError(t, err)
	require.Equal(t, "/uploads/old.png", image)

	_, err = os.Stat(dir + "/old.png")
	require.NoError(t, err)
}

func TestProjectService_Update_SupersededLocalFileDeleted(t *testing.T) {
	repo := &mockProjects{
		GetFn: func(int) (models.Project, error) {
			return models.Project{ID: 1, Image: "/uploads/old.png"}, nil
		},
	}
	svc, dir := newTestProjectService(t, repo)
	require.NoError(t, os.WriteFile(dir+"/old.png", []byte("x"), 0o644))

	image, err := svc.Update(context.Background(), 1, ProjectInput{
		Title: "T", Category: "C", ImagePath: "https://host/new.jpg",
	})
	require.NoError(t, err)
	require.Equal(t, "https://host/new.jpg", image)

	_, err = os.Stat(dir + "/old.png")
	require.True(t, os.IsNotExist(err), "superseded local file must be deleted")
}

func TestProjectService_Update_NotFound(t *testing.T) {
	repo := &mockProjects{
		GetFn: func(int) (models.Project, error) { return models.Project{}, repository.ErrNotFound },
	}
	svc, _ := newTestProjectService(t, repo)

	_, err := svc.Update(context.Background(), 42, ProjectInput{Title: "T", Category: "C"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectService_Delete(t *testing.T) {
	t.Run("local image file removed", func(t *testing.T) {
		repo := &mockProjects{
			GetFn: func(int) (models.Project, error) {
				return models.Project{ID: 1, Image: "/uploads/gone.png"}, nil
			},
		}
		svc, dir := newTestProjectService(t, repo)
		require.NoError(t, os.WriteFile(dir+"/gone.png", []byte("x"), 0o644))

		require.NoError(t, svc.Delete(context.Background(), 1))

		_, err := os.Stat(dir + "/gone.png")
		require.True(t, os.IsNotExist(err))
	})

	t.Run("external image untouched", func(t *testing.T) {
		repo := &mockProjects{
			GetFn: func(int) (models.Project, error) {
				return models.Project{ID: 1, Image: "https://cdn.example/i/abc.png"}, nil
			},
		}
		svc, _ := newTestProjectService(t, repo)
		require.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("missing project", func(t *testing.T) {
		repo := &mockProjects{
			GetFn: func(int) (models.Project, error) { return models.Project{}, repository.ErrNotFound },
		}
		svc, _ := newTestProjectService(t, repo)
		require.ErrorIs(t, svc.Delete(context.Background(), 42), repository.ErrNotFound)
	})
}
