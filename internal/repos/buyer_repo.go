package repos

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"

	"github.com/jmoiron/sqlx"
)

type BuyerRepo struct{ db *sqlx.DB }

func NewBuyerRepo(db *sqlx.DB) *BuyerRepo { return &BuyerRepo{db: db} }

func (r *BuyerRepo) Create(ctx context.Context, b domain.Buyer) error {
	if b.CreatedAt == "" {
		b.CreatedAt = now()
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO buyers(id, battle_id, auth_token, name, created_at)
		VALUES(?, ?, ?, ?, ?)
	`), b.ID, b.BattleID, b.AuthToken, b.Name, b.CreatedAt)
	return err
}

func (r *BuyerRepo) ByID(ctx context.Context, battleID, id string) (domain.Buyer, error) {
	var b domain.Buyer
	err := r.db.GetContext(ctx, &b, r.db.Rebind(`
		SELECT id, battle_id, auth_token, name, created_at
		FROM buyers
		WHERE id = ? AND battle_id = ?
	`), id, battleID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Buyer{}, marketerrors.Missing("buyer", id)
	}
	return b, err
}

func (r *BuyerRepo) ByToken(ctx context.Context, token string) (domain.Buyer, error) {
	var b domain.Buyer
	err := r.db.GetContext(ctx, &b, r.db.Rebind(`
		SELECT id, battle_id, auth_token, name, created_at
		FROM buyers
		WHERE auth_token = ?
	`), token)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Buyer{}, marketerrors.Missing("buyer")
	}
	return b, err
}

func (r *BuyerRepo) ListByBattle(ctx context.Context, battleID string) ([]domain.Buyer, error) {
	out := []domain.Buyer{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT id, battle_id, auth_token, name, created_at
		FROM buyers
		WHERE battle_id = ?
		ORDER BY created_at, id
	`), battleID)
	return out, err
}
