package repos

import (
	"context"

	"marketplace/internal/domain"

	"github.com/jmoiron/sqlx"
)

// PurchaseRepo is append-only; there is no update or delete.
type PurchaseRepo struct{ db *sqlx.DB }

func NewPurchaseRepo(db *sqlx.DB) *PurchaseRepo { return &PurchaseRepo{db: db} }

func (r *PurchaseRepo) Create(ctx context.Context, p domain.Purchase) error {
	if p.CreatedAt == "" {
		p.CreatedAt = now()
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO purchases
		  (id, product_id, buyer_id, battle_id, purchased_at, round,
		   price_of_purchase, wholesale_cost_at_purchase, created_at)
		VALUES
		  (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), p.ID, p.ProductID, p.BuyerID, p.BattleID, p.PurchasedAt, p.Round,
		p.PriceOfPurchase, p.WholesaleCostAtPurchase, p.CreatedAt)
	return err
}

func (r *PurchaseRepo) ListByBattle(ctx context.Context, battleID string) ([]domain.Purchase, error) {
	out := []domain.Purchase{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT id, product_id, buyer_id, battle_id, purchased_at, round,
		       price_of_purchase, wholesale_cost_at_purchase, created_at
		FROM purchases
		WHERE battle_id = ?
		ORDER BY created_at, id
	`), battleID)
	return out, err
}

// CountByProductForRound maps product id to purchase count within one round.
// Products without purchases are absent.
func (r *PurchaseRepo) CountByProductForRound(ctx context.Context, battleID string, round int) (map[string]int, error) {
	var rows []struct {
		ProductID string `db:"product_id"`
		N         int    `db:"n"`
	}
	err := r.db.SelectContext(ctx, &rows, r.db.Rebind(`
		SELECT product_id, COUNT(*) AS n
		FROM purchases
		WHERE battle_id = ? AND round = ?
		GROUP BY product_id
	`), battleID, round)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.ProductID] = row.N
	}
	return out, nil
}

// ListWithSeller joins each purchase of the battle to its product's seller.
func (r *PurchaseRepo) ListWithSeller(ctx context.Context, battleID string) ([]PurchaseRow, error) {
	out := []PurchaseRow{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT pu.id, pu.product_id, pu.buyer_id, pu.battle_id, pu.purchased_at,
		       pu.round, pu.price_of_purchase, pu.wholesale_cost_at_purchase,
		       pu.created_at, p.seller_id, p.name AS product_name
		FROM purchases pu
		JOIN products p ON p.id = pu.product_id AND p.battle_id = pu.battle_id
		WHERE pu.battle_id = ?
		ORDER BY pu.created_at, pu.id
	`), battleID)
	return out, err
}
