package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/curiolab/internal/progress"
)

// Fixed record keys, matching the web client's storage keys.
const (
	keyProfile  = "curiolab_profile"
	keyProgress = "curiolab_progress"
)

// Records implements progress.Store on top of the records table.
type Records struct {
	store *Store
}

// Records returns the progress.Store view of this store.
func (s *Store) Records() *Records {
	return &Records{store: s}
}

func (r *Records) LoadProfile(ctx context.Context) (*progress.Profile, error) {
	var p progress.Profile
	ok, err := r.load(ctx, keyProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (r *Records) SaveProfile(ctx context.Context, p *progress.Profile) error {
	return r.save(ctx, keyProfile, p)
}

func (r *Records) LoadProgress(ctx context.Context) (*progress.UserProgress, error) {
	var up progress.UserProgress
	ok, err := r.load(ctx, keyProgress, &up)
	if err != nil || !ok {
		return nil, err
	}
	return &up, nil
}

func (r *Records) SaveProgress(ctx context.Context, up *progress.UserProgress) error {
	return r.save(ctx, keyProgress, up)
}

// Reset deletes both records in one transaction: after a reset either
// both are gone or, on failure, both remain.
func (r *Records) Reset(ctx context.Context) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE key IN (?, ?)`, keyProfile, keyProgress); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

func (r *Records) load(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := r.store.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *Records) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = r.store.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
