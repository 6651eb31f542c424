package repos

//go:generate mockgen -source=store.go -destination=mock_store.go -package=repos

import (
	"context"

	"marketplace/internal/domain"
)

// Store contracts used by the services. Every call is atomic on its own;
// nothing here coordinates across calls.

type SellerStore interface {
	Create(ctx context.Context, s domain.Seller) error
	ByID(ctx context.Context, battleID, id string) (domain.Seller, error)
	ByToken(ctx context.Context, token string) (domain.Seller, error)
	ListByBattle(ctx context.Context, battleID string) ([]domain.Seller, error)
}

type BuyerStore interface {
	Create(ctx context.Context, b domain.Buyer) error
	ByID(ctx context.Context, battleID, id string) (domain.Buyer, error)
	ByToken(ctx context.Context, token string) (domain.Buyer, error)
	ListByBattle(ctx context.Context, battleID string) ([]domain.Buyer, error)
}

type ProductStore interface {
	Create(ctx context.Context, p domain.Product) error
	// Update rewrites the product row; image links are replaced only when
	// relinkImages is set.
	Update(ctx context.Context, p domain.Product, relinkImages bool) error
	ByID(ctx context.Context, battleID, id string) (domain.Product, error)
	ListByBattle(ctx context.Context, battleID string) ([]domain.Product, error)
	Search(ctx context.Context, battleID string, f SearchFilter) ([]domain.Product, error)
	// ApplyRankings writes rankings only if the battle's ranking revision
	// still equals expectedRevision, and bumps it.
	ApplyRankings(ctx context.Context, battleID string, expectedRevision int, ranks []domain.RankingUpdate) error
	// OverwriteRankings writes rankings unconditionally and bumps the revision.
	OverwriteRankings(ctx context.Context, battleID string, ranks []domain.RankingUpdate) error
}

type ImageStore interface {
	Create(ctx context.Context, img domain.Image) (bool, error)
	ByIDs(ctx context.Context, ids []string) ([]domain.Image, error)
	List(ctx context.Context) ([]domain.Image, error)
	ListByCategory(ctx context.Context, productNumber string) ([]domain.Image, error)
	Categories(ctx context.Context) ([]string, error)
}

type PurchaseStore interface {
	Create(ctx context.Context, p domain.Purchase) error
	ListByBattle(ctx context.Context, battleID string) ([]domain.Purchase, error)
	CountByProductForRound(ctx context.Context, battleID string, round int) (map[string]int, error)
	ListWithSeller(ctx context.Context, battleID string) ([]PurchaseRow, error)
}

type MetadataStore interface {
	// Get reports found=false when no row exists.
	Get(ctx context.Context, battleID, key string) (value string, found bool, err error)
	Put(ctx context.Context, battleID, key, value string) error
	ListByBattle(ctx context.Context, battleID string) ([]domain.Metadata, error)
}

// SearchFilter narrows a battle's product listing. Empty fields match all.
type SearchFilter struct {
	Query    string
	SellerID string
	Limit    int
}

// PurchaseRow is a purchase joined with the owning seller and product name.
type PurchaseRow struct {
	domain.Purchase
	SellerID    string `db:"seller_id"`
	ProductName string `db:"product_name"`
}

var (
	_ SellerStore   = (*SellerRepo)(nil)
	_ BuyerStore    = (*BuyerRepo)(nil)
	_ ProductStore  = (*ProductRepo)(nil)
	_ ImageStore    = (*ImageRepo)(nil)
	_ PurchaseStore = (*PurchaseRepo)(nil)
	_ MetadataStore = (*MetadataRepo)(nil)
)
