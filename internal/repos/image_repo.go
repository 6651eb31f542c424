package repos

import (
	"context"

	"marketplace/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ImageRepo serves the shared image catalog. Reads leave Base64 empty; the
// payload is only ever written.
type ImageRepo struct{ db *sqlx.DB }

func NewImageRepo(db *sqlx.DB) *ImageRepo { return &ImageRepo{db: db} }

const imageColumns = `id, COALESCE(image_description,'') AS image_description, COALESCE(product_number,'') AS product_number`

// Create inserts img unless its id exists. It reports whether a row was added.
func (r *ImageRepo) Create(ctx context.Context, img domain.Image) (bool, error) {
	var desc, pn any
	if img.Description != "" {
		desc = img.Description
	}
	if img.ProductNumber != "" {
		pn = img.ProductNumber
	}
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO images(id, base64, image_description, product_number)
		VALUES(?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`), img.ID, img.Base64, desc, pn)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

// ByIDs returns the images that exist among ids; missing ids are simply absent.
func (r *ImageRepo) ByIDs(ctx context.Context, ids []string) ([]domain.Image, error) {
	out := []domain.Image{}
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`SELECT `+imageColumns+` FROM images WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	err = r.db.SelectContext(ctx, &out, r.db.Rebind(query), args...)
	return out, err
}

func (r *ImageRepo) List(ctx context.Context) ([]domain.Image, error) {
	out := []domain.Image{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+imageColumns+` FROM images ORDER BY product_number, id`)
	return out, err
}

func (r *ImageRepo) ListByCategory(ctx context.Context, productNumber string) ([]domain.Image, error) {
	out := []domain.Image{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT `+imageColumns+`
		FROM images
		WHERE product_number = ?
		ORDER BY id
	`), productNumber)
	return out, err
}

// Categories lists distinct non-null product numbers.
func (r *ImageRepo) Categories(ctx context.Context) ([]string, error) {
	out := []string{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT DISTINCT product_number
		FROM images
		WHERE product_number IS NOT NULL AND product_number <> ''
		ORDER BY product_number
	`)
	return out, err
}
