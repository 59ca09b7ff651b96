// Package notes contains the PostgreSQL repository for notes.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/google/uuid"
)

const noteColumns = `id, title, description, author_id, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	n := &models.Note{}
	if err := row.Scan(&n.ID, &n.Title, &n.Description, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`INSERT INTO notes (id, title, description, author_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.ID, note.Title, note.Description, note.AuthorID).Scan(&note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		// the author was deleted after the caller was resolved
		if dbx.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: author %s no longer exists", common.ErrorUnauthenticated, note.AuthorID)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	note, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Note, error) {
	if _, err := uuid.Parse(authorID); err != nil {
		return []*models.Note{}, nil
	}

	query := `SELECT ` + noteColumns + ` FROM notes WHERE author_id = $1 ORDER BY created_at DESC, id DESC`

	return r.query(ctx, query, authorID)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC, id DESC`

	return r.query(ctx, query)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update applies the non-nil fields of patch and returns the stored record.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	query :=
		`UPDATE notes SET
		   title = COALESCE($2, title),
		   description = COALESCE($3, description),
		   updated_at = now()
		 WHERE id = $1
		 RETURNING ` + noteColumns

	note, err := scanNote(r.db.QueryRowContext(ctx, query, id, patch.Title, patch.Description))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// DeleteByAuthor removes every note owned by authorID and reports how many
// were deleted.
func (r *PostgresRepository) DeleteByAuthor(ctx context.Context, authorID string) (int64, error) {
	if _, err := uuid.Parse(authorID); err != nil {
		return 0, nil
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE author_id = $1`, authorID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}
