package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SettingSQLite struct {
	db *sql.DB
}

func NewSettingSQLite(db *sql.DB) *SettingSQLite {
	return &SettingSQLite{db: db}
}

var _ Settings = (*SettingSQLite)(nil)

const (
	selectSettingSQL = `SELECT value FROM settings WHERE key = ?`

	upsertSettingSQL = `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`

	deleteSettingSQL = `DELETE FROM settings WHERE key = ?`
)

// Get returns the value for key, or ErrNotFound when the key is absent.
func (r *SettingSQLite) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, selectSettingSQL, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("select setting %q: %w", key, err)
	}
	return value, nil
}

// Upsert writes the value for key, replacing any previous one.
func (r *SettingSQLite) Upsert(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertSettingSQL, key, value); err != nil {
		return fmt.Errorf("upsert setting %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Returns ErrNotFound when it was not present.
func (r *SettingSQLite) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, deleteSettingSQL, key)
	if err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for setting %q: %w", key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
