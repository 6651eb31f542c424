package repos

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"

	"github.com/jmoiron/sqlx"
)

type SellerRepo struct{ db *sqlx.DB }

func NewSellerRepo(db *sqlx.DB) *SellerRepo { return &SellerRepo{db: db} }

func (r *SellerRepo) Create(ctx context.Context, s domain.Seller) error {
	if s.CreatedAt == "" {
		s.CreatedAt = now()
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO sellers(id, battle_id, auth_token, created_at)
		VALUES(?, ?, ?, ?)
	`), s.ID, s.BattleID, s.AuthToken, s.CreatedAt)
	return err
}

func (r *SellerRepo) ByID(ctx context.Context, battleID, id string) (domain.Seller, error) {
	var s domain.Seller
	err := r.db.GetContext(ctx, &s, r.db.Rebind(`
		SELECT id, battle_id, auth_token, created_at
		FROM sellers
		WHERE id = ? AND battle_id = ?
	`), id, battleID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Seller{}, marketerrors.Missing("seller", id)
	}
	return s, err
}

func (r *SellerRepo) ByToken(ctx context.Context, token string) (domain.Seller, error) {
	var s domain.Seller
	err := r.db.GetContext(ctx, &s, r.db.Rebind(`
		SELECT id, battle_id, auth_token, created_at
		FROM sellers
		WHERE auth_token = ?
	`), token)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Seller{}, marketerrors.Missing("seller")
	}
	return s, err
}

// ListByBattle returns sellers in creation order.
func (r *SellerRepo) ListByBattle(ctx context.Context, battleID string) ([]domain.Seller, error) {
	out := []domain.Seller{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT id, battle_id, auth_token, created_at
		FROM sellers
		WHERE battle_id = ?
		ORDER BY created_at, id
	`), battleID)
	return out, err
}
