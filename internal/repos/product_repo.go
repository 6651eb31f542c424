package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `
    id, battle_id, seller_id, name, short_description, long_description,
    price_in_cent, currency, bestseller, ranking, towel_variant, gsm,
    width_inches, length_inches, material, wholesale_cost_cents,
    created_at, updated_at`

// Create inserts the product and its image links in one transaction.
func (r *ProductRepo) Create(ctx context.Context, p domain.Product) error {
	ts := now()
	if p.CreatedAt == "" {
		p.CreatedAt = ts
	}
	if p.UpdatedAt == "" {
		p.UpdatedAt = p.CreatedAt
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.GetContext(ctx, &n, tx.Rebind(`SELECT COUNT(*) FROM products WHERE id = ?`), p.ID); err != nil {
		return err
	}
	if n > 0 {
		return marketerrors.Invalid("product %s already exists", p.ID)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO products(`+productColumns+`)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`),
		p.ID, p.BattleID, p.SellerID, p.Name, p.ShortDescription, p.LongDescription,
		p.PriceInCent, p.Currency, p.Bestseller, p.Ranking, p.TowelVariant, p.GSM,
		p.WidthInches, p.LengthInches, p.Material, p.WholesaleCostCents,
		p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return err
	}
	if err := linkImages(ctx, tx, p.ID, p.ImageIDs); err != nil {
		return err
	}
	return tx.Commit()
}

// Update rewrites the seller-owned columns; ranking and bestseller belong to
// the ranking writers and are left alone. Image links are replaced only when
// relinkImages is set; otherwise p.ImageIDs is ignored.
func (r *ProductRepo) Update(ctx context.Context, p domain.Product, relinkImages bool) error {
	p.UpdatedAt = now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, tx.Rebind(`
		UPDATE products SET
		  name = ?, short_description = ?, long_description = ?,
		  price_in_cent = ?, currency = ?,
		  towel_variant = ?, gsm = ?, width_inches = ?, length_inches = ?,
		  material = ?, wholesale_cost_cents = ?, updated_at = ?
		WHERE id = ? AND battle_id = ?
	`),
		p.Name, p.ShortDescription, p.LongDescription,
		p.PriceInCent, p.Currency,
		p.TowelVariant, p.GSM, p.WidthInches, p.LengthInches,
		p.Material, p.WholesaleCostCents, p.UpdatedAt,
		p.ID, p.BattleID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return marketerrors.Missing("product", p.ID)
	}

	if relinkImages {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM product_images WHERE product_id = ?`), p.ID); err != nil {
			return err
		}
		if err := linkImages(ctx, tx, p.ID, p.ImageIDs); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func linkImages(ctx context.Context, tx *sqlx.Tx, productID string, imageIDs []string) error {
	seen := make(map[string]bool, len(imageIDs))
	pos := 0
	for _, id := range imageIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO product_images(product_id, image_id, position)
			VALUES(?, ?, ?)
		`), productID, id, pos); err != nil {
			return err
		}
		pos++
	}
	return nil
}

func (r *ProductRepo) ByID(ctx context.Context, battleID, id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, r.db.Rebind(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = ? AND battle_id = ?
	`), id, battleID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, marketerrors.Missing("product", id)
	}
	if err != nil {
		return domain.Product{}, err
	}
	out := []domain.Product{p}
	if err := r.attachImages(ctx, out); err != nil {
		return domain.Product{}, err
	}
	return out[0], nil
}

// ListByBattle returns products in creation order, which is the stable
// order ranking ties fall back to.
func (r *ProductRepo) ListByBattle(ctx context.Context, battleID string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT `+productColumns+`
		FROM products
		WHERE battle_id = ?
		ORDER BY created_at, id
	`), battleID)
	if err != nil {
		return nil, err
	}
	return out, r.attachImages(ctx, out)
}

// Search orders by ranking (nulls last), then bestseller, then name.
func (r *ProductRepo) Search(ctx context.Context, battleID string, f SearchFilter) ([]domain.Product, error) {
	where := `battle_id = ?`
	args := []any{battleID}
	if q := strings.TrimSpace(f.Query); q != "" {
		where += ` AND LOWER(name) LIKE ?`
		args = append(args, "%"+strings.ToLower(q)+"%")
	}
	if f.SellerID != "" {
		where += ` AND seller_id = ?`
		args = append(args, f.SellerID)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ` + where + `
		ORDER BY (ranking IS NULL), ranking ASC, bestseller DESC, name ASC, id ASC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	out := []domain.Product{}
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return out, r.attachImages(ctx, out)
}

func (r *ProductRepo) attachImages(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]string, len(products))
	idx := make(map[string]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
		idx[p.ID] = i
		products[i].ImageIDs = []string{}
	}

	query, args, err := sqlx.In(`
		SELECT product_id, image_id
		FROM product_images
		WHERE product_id IN (?)
		ORDER BY product_id, position
	`, ids)
	if err != nil {
		return err
	}
	var links []struct {
		ProductID string `db:"product_id"`
		ImageID   string `db:"image_id"`
	}
	if err := r.db.SelectContext(ctx, &links, r.db.Rebind(query), args...); err != nil {
		return err
	}
	for _, l := range links {
		i := idx[l.ProductID]
		products[i].ImageIDs = append(products[i].ImageIDs, l.ImageID)
	}
	return nil
}

// ApplyRankings writes ranks only while the battle's ranking_revision still
// equals expectedRevision. The revision check, bump and ranking writes share
// one transaction; a lost race returns ErrRankingConflict.
func (r *ProductRepo) ApplyRankings(ctx context.Context, battleID string, expectedRevision int, ranks []domain.RankingUpdate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var stored string
	err = tx.GetContext(ctx, &stored, tx.Rebind(`
		SELECT value FROM metadata WHERE key = ? AND battle_id = ?
	`), domain.KeyRankingRevision, battleID)
	found := true
	if errors.Is(err, sql.ErrNoRows) {
		found, err = false, nil
	}
	if err != nil {
		return err
	}
	current, _ := strconv.Atoi(stored)
	if current != expectedRevision {
		return marketerrors.ErrRankingConflict
	}

	next := strconv.Itoa(expectedRevision + 1)
	var res sql.Result
	if found {
		res, err = tx.ExecContext(ctx, tx.Rebind(`
			UPDATE metadata SET value = ?
			WHERE key = ? AND battle_id = ? AND value = ?
		`), next, domain.KeyRankingRevision, battleID, stored)
	} else {
		res, err = tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO metadata(key, battle_id, value)
			VALUES(?, ?, ?)
			ON CONFLICT(key, battle_id) DO NOTHING
		`), domain.KeyRankingRevision, battleID, next)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n != 1 {
		return marketerrors.ErrRankingConflict
	}

	if err := writeRanks(ctx, tx, battleID, ranks); err != nil {
		return err
	}
	return tx.Commit()
}

// OverwriteRankings sets the given ranks regardless of revision and bumps
// it. Every product must exist in the battle or nothing is written.
func (r *ProductRepo) OverwriteRankings(ctx context.Context, battleID string, ranks []domain.RankingUpdate) error {
	if len(ranks) == 0 {
		return nil
	}
	ids := make([]string, 0, len(ranks))
	for _, u := range ranks {
		ids = append(ids, u.ProductID)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := sqlx.In(`SELECT id FROM products WHERE battle_id = ? AND id IN (?)`, battleID, ids)
	if err != nil {
		return err
	}
	var existing []string
	if err := tx.SelectContext(ctx, &existing, tx.Rebind(query), args...); err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}
	var missing []string
	for _, id := range ids {
		if !have[id] {
			missing = append(missing, id)
			have[id] = true // report each id once
		}
	}
	if len(missing) > 0 {
		return marketerrors.Missing("product", missing...)
	}

	if err := writeRanks(ctx, tx, battleID, ranks); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO metadata(key, battle_id, value)
		VALUES(?, ?, '1')
		ON CONFLICT(key, battle_id)
		DO UPDATE SET value = CAST(CAST(metadata.value AS INTEGER) + 1 AS TEXT)
	`), domain.KeyRankingRevision, battleID); err != nil {
		return fmt.Errorf("bump ranking revision: %w", err)
	}
	return tx.Commit()
}

func writeRanks(ctx context.Context, tx *sqlx.Tx, battleID string, ranks []domain.RankingUpdate) error {
	ts := now()
	stmt := tx.Rebind(`
		UPDATE products
		SET ranking = ?, bestseller = COALESCE(?, bestseller), updated_at = ?
		WHERE id = ? AND battle_id = ?
	`)
	for _, u := range ranks {
		if _, err := tx.ExecContext(ctx, stmt, u.Ranking, u.Bestseller, ts, u.ProductID, battleID); err != nil {
			return err
		}
	}
	return nil
}
