package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio_backend/internal/models"
)

type ProjectSQLite struct {
	db *sql.DB
}

func NewProjectSQLite(db *sql.DB) *ProjectSQLite {
	return &ProjectSQLite{db: db}
}

// Ensure implementation of Projects interface at compile time.
var _ Projects = (*ProjectSQLite)(nil)

const (
	projectColumns = `id, title, category, description, image, tags, link, sort_order, created_at, updated_at`

	// Trailing id ASC keeps equal sort_order/created_at rows in insertion order.
	listProjectsSQL = `SELECT ` + projectColumns + ` FROM projects
		ORDER BY sort_order ASC, created_at DESC, id ASC`

	selectProjectSQL = `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	insertProjectSQL = `INSERT INTO projects (title, category, description, image, tags, link, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	updateProjectSQL = `UPDATE projects
		SET title = ?, category = ?, description = ?, image = ?, tags = ?, link = ?, sort_order = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	deleteProjectSQL = `DELETE FROM projects WHERE id = ?`
)

// marshalTags converts the slice to JSON text; nil stays NULL in the column.
func marshalTags(tags []string) (sql.NullString, error) {
	if tags == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal tags: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

// unmarshalTags parses the stored JSON text. NULL/empty decodes to an empty
// slice so API responses always carry "tags": [].
func unmarshalTags(s sql.NullString) ([]string, error) {
	if !s.Valid || s.String == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s.String), &tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags %q: %w", s.String, err)
	}
	if tags == nil {
		return []string{}, nil
	}
	return tags, nil
}

func scanProject(s interface{ Scan(...any) error }) (models.Project, error) {
	var (
		p                        models.Project
		description, image, link sql.NullString
		tags                     sql.NullString
	)
	if err := s.Scan(
		&p.ID, &p.Title, &p.Category, &description, &image,
		&tags, &link, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return models.Project{}, err
	}
	p.Description = description.String
	p.Image = image.String
	p.Link = link.String
	decoded, err := unmarshalTags(tags)
	if err != nil {
		return models.Project{}, err
	}
	p.Tags = decoded
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

// List returns every project ordered by sort_order ASC, created_at DESC.
func (r *ProjectSQLite) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, listProjectsSQL)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]models.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// GetByID fetches one project. Returns ErrNotFound on a miss.
func (r *ProjectSQLite) GetByID(ctx context.Context, id int) (models.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, selectProjectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, fmt.Errorf("select project %d: %w", id, err)
	}
	return p, nil
}

// Insert creates a project row and returns its new id. Timestamps come from
// the column defaults.
func (r *ProjectSQLite) Insert(ctx context.Context, p models.Project) (int, error) {
	tags, err := marshalTags(p.Tags)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, insertProjectSQL,
		p.Title, p.Category, nullable(p.Description), nullable(p.Image),
		tags, nullable(p.Link), p.SortOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("insert project %q: %w", p.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for project %q: %w", p.Title, err)
	}
	return int(lastID), nil
}

// Update replaces every mutable field and refreshes updated_at.
// Returns ErrNotFound when the id does not exist.
func (r *ProjectSQLite) Update(ctx context.Context, id int, p models.Project) error {
	tags, err := marshalTags(p.Tags)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, updateProjectSQL,
		p.Title, p.Category, nullable(p.Description), nullable(p.Image),
		tags, nullable(p.Link), p.SortOrder, id,
	)
	if err != nil {
		return fmt.Errorf("update project %d: %w", id, err)
	}
	return requireRowAffected(res, id)
}

// Delete removes the row. Returns ErrNotFound when the id does not exist.
func (r *ProjectSQLite) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteProjectSQL, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return requireRowAffected(res, id)
}

func requireRowAffected(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for project %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// nullable maps "" to NULL so optional text columns stay NULL when unset.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
