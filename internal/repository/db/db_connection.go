package db

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// SeedOptions controls what gets written into a fresh database.
type SeedOptions struct {
	AdminUsername string
	AdminPassword string // hashed before it touches disk
	SampleData    bool
}

// InitDB opens/creates the SQLite DB file, ensures tables exist and seeds
// the default admin (and optionally a few sample projects) on first run.
func InitDB(path string, seed SeedOptions) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Single connection: serializes writers, which is all this admin-traffic
	// workload needs.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := seedDefaults(db, seed); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const schemaProjects = `
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    description TEXT,
    image TEXT,
    tags TEXT,
    link TEXT,
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const schemaSettings = `
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaProjects,
		schemaUsers,
		schemaSettings,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}

// seedDefaults creates the admin account when the users table is empty and,
// when asked, a couple of sample projects when the projects table is empty.
// Both checks are independent, so re-running never duplicates anything.
func seedDefaults(db *sql.DB, seed SeedOptions) error {
	var users int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if users == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		if _, err := db.Exec(
			`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
			seed.AdminUsername, string(hash),
		); err != nil {
			return fmt.Errorf("seed admin user %q: %w", seed.AdminUsername, err)
		}
	}

	if !seed.SampleData {
		return nil
	}

	var projects int
	if err := db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&projects); err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if projects == 0 {
		for _, p := range sampleProjects {
			if _, err := db.Exec(
				`INSERT INTO projects (title, category, description, tags, sort_order) VALUES (?, ?, ?, ?, ?)`,
				p.title, p.category, p.description, p.tags, p.sortOrder,
			); err != nil {
				return fmt.Errorf("seed sample project %q: %w", p.title, err)
			}
		}
	}
	return nil
}

var sampleProjects = []struct {
	title       string
	category    string
	description string
	tags        string
	sortOrder   int
}{
	{"Brand Identity", "Design", "Visual identity exploration.", `["branding","print"]`, 0},
	{"Product Landing", "Web", "Marketing page for a product launch.", `["web","frontend"]`, 1},
}
