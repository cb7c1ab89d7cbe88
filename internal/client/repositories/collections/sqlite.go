package collections

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mindfulapp/mindful/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns the payload stored for kind, or nil when no snapshot exists.
func (r *SQLiteRepository) Get(ctx context.Context, kind string) ([]byte, error) {
	var payload []byte
	query := `SELECT payload FROM collections WHERE kind = ?`
	err := r.db.QueryRowContext(ctx, query, kind).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection %q: %w", kind, err)
	}
	return payload, nil
}

// Put upserts the snapshot for kind, stamping the fetch time.
func (r *SQLiteRepository) Put(ctx context.Context, kind string, payload []byte) error {
	query := `INSERT INTO collections (kind, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`
	_, err := r.db.ExecContext(ctx, query, kind, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert collection %q: %w", kind, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, kind string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE kind = ?`, kind)
	if err != nil {
		return fmt.Errorf("failed to delete collection %q: %w", kind, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collections`)
	if err != nil {
		return fmt.Errorf("failed to clear collections: %w", err)
	}
	return nil
}
