package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockSettingRepo(t *testing.T) (*SettingSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewSettingSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestSettingSQLite_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newMockSettingRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectSettingSQL)).
			WithArgs("resume_path").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("/uploads/resume.pdf"))

		v, err := repo.Get(context.Background(), "resume_path")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "/uploads/resume.pdf" {
			t.Fatalf("unexpected value %q", v)
		}
	})

	t.Run("missing key yields ErrNotFound", func(t *testing.T) {
		repo, mock, cleanup := newMockSettingRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectSettingSQL)).
			WithArgs("resume_path").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "resume_path")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestSettingSQLite_Upsert(t *testing.T) {
	repo, mock, cleanup := newMockSettingRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(upsertSettingSQL)).
		WithArgs("resume_path", "/uploads/resume.docx").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), "resume_path", "/uploads/resume.docx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSettingSQLite_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockSettingRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteSettingSQL)).
			WithArgs("resume_path").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Delete(context.Background(), "resume_path"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("absent key yields ErrNotFound", func(t *testing.T) {
		repo, mock, cleanup := newMockSettingRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteSettingSQL)).
			WithArgs("resume_path").
			WillReturnResult(sqlmock.NewResult(0, 0))

		if !errors.Is(repo.Delete(context.Background(), "resume_path"), ErrNotFound) {
			t.Fatalf("expected ErrNotFound")
		}
	})
}
