package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/svolkov/ainotes/internal/logger"
	"github.com/svolkov/ainotes/internal/models"
)

type NoteReadRepository struct {
	db *sqlx.DB
}

func NewNoteReadRepository(db *sqlx.DB) *NoteReadRepository {
	return &NoteReadRepository{db: db}
}

// GetByIDAndOwner returns the note with the given id only when it is owned
// by ownerID, or nil when it does not exist or belongs to someone else.
// Every ownership check in the service layer goes through this method.
func (r *NoteReadRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.NoteDB, error) {
	const query = `
		SELECT id, title, content, owner_id, created_at, updated_at
		FROM notes
		WHERE id = $1 AND owner_id = $2
		LIMIT 1
	`

	var note models.NoteDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &note, query, id, ownerID)

	logger.Log.Infow("note query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, ownerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// ListByOwner returns all notes owned by ownerID in primary key order.
func (r *NoteReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.NoteDB, error) {
	const query = `
		SELECT id, title, content, owner_id, created_at, updated_at
		FROM notes
		WHERE owner_id = $1
		ORDER BY id
	`

	notes := []models.NoteDB{}
	err := sqlx.SelectContext(ctx, r.ext(ctx), &notes, query, ownerID)

	logger.Log.Infow("note list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"count", len(notes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *NoteReadRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

type NoteWriteRepository struct {
	db *sqlx.DB
}

func NewNoteWriteRepository(db *sqlx.DB) *NoteWriteRepository {
	return &NoteWriteRepository{db: db}
}

// Save inserts a new note owned by ownerID and returns its id.
func (r *NoteWriteRepository) Save(ctx context.Context, ownerID int64, title, content string) (int64, error) {
	const query = `
		INSERT INTO notes (title, content, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	args := []any{title, content, ownerID}

	var id int64
	err := sqlx.GetContext(ctx, r.ext(ctx), &id, query, args...)

	logger.Log.Infow("note insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update overwrites title and content of the note owned by ownerID and
// refreshes updated_at. Returns false when no such owned note exists.
func (r *NoteWriteRepository) Update(ctx context.Context, id, ownerID int64, title, content string) (bool, error) {
	const query = `
		UPDATE notes
		SET title = $3, content = $4, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
	`
	args := []any{id, ownerID, title, content}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("note update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// Delete removes the note owned by ownerID. Returns false when no such
// owned note exists.
func (r *NoteWriteRepository) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	const query = `
		DELETE FROM notes
		WHERE id = $1 AND owner_id = $2
	`
	args := []any{id, ownerID}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("note delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *NoteWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}
