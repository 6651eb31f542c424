package repos

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/domain"

	"github.com/jmoiron/sqlx"
)

type MetadataRepo struct{ db *sqlx.DB }

func NewMetadataRepo(db *sqlx.DB) *MetadataRepo { return &MetadataRepo{db: db} }

func (r *MetadataRepo) Get(ctx context.Context, battleID, key string) (string, bool, error) {
	var v string
	err := r.db.GetContext(ctx, &v, r.db.Rebind(`
		SELECT value FROM metadata
		WHERE key = ? AND battle_id = ?
	`), key, battleID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Put upserts (key, battle_id).
func (r *MetadataRepo) Put(ctx context.Context, battleID, key, value string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO metadata(key, battle_id, value)
		VALUES (?, ?, ?)
		ON CONFLICT(key, battle_id) DO UPDATE SET value = excluded.value
	`), key, battleID, value)
	return err
}

func (r *MetadataRepo) ListByBattle(ctx context.Context, battleID string) ([]domain.Metadata, error) {
	out := []domain.Metadata{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT key, battle_id, value FROM metadata
		WHERE battle_id = ?
		ORDER BY key
	`), battleID)
	return out, err
}
