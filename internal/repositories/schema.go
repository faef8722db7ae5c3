package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/svolkov/ainotes/internal/logger"
)

// schema is applied once at startup. Every statement is idempotent so
// restarting the process against an existing database is a no-op.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	name          VARCHAR(100) NOT NULL,
	email         VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS notes (
	id         BIGSERIAL PRIMARY KEY,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	owner_id   BIGINT NOT NULL REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_notes_owner_id ON notes(owner_id);
`

// EnsureSchema creates the users and notes tables if they do not exist.
// Called once during process initialization, before the server starts.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("failed to ensure schema", "error", err)
		return err
	}

	logger.Log.Info("database schema ensured")
	return nil
}
