package services_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/repos"
	"marketplace/internal/services"
)

// env wires every service over one seeded in-memory database.
type env struct {
	Sellers   *repos.SellerRepo
	Buyers    *repos.BuyerRepo
	Products  *repos.ProductRepo
	Purchases *repos.PurchaseRepo
	Meta      *repos.MetadataRepo

	Phases      *services.PhaseService
	Clock       *services.ClockService
	Metadata    *services.MetadataService
	Auth        *services.AuthService
	Catalog     *services.CatalogService
	Buy         *services.PurchaseService
	Rankings    *services.RankingService
	Leaderboard *services.LeaderboardService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return newEnvAt(t, ":memory:")
}

func newEnvAt(t *testing.T, dsn string) *env {
	t.Helper()
	db, err := repos.OpenDB(dsn)
	require.NoError(t, err)
	require.NoError(t, repos.SeedImages(db))
	t.Cleanup(func() { _ = db.Close() })

	e := &env{
		Sellers:   repos.NewSellerRepo(db),
		Buyers:    repos.NewBuyerRepo(db),
		Products:  repos.NewProductRepo(db),
		Purchases: repos.NewPurchaseRepo(db),
		Meta:      repos.NewMetadataRepo(db),
	}
	images := repos.NewImageRepo(db)
	e.Phases = services.NewPhaseService(e.Meta)
	e.Clock = services.NewClockService(e.Meta)
	e.Metadata = services.NewMetadataService(e.Meta)
	e.Auth = services.NewAuthService(e.Sellers, e.Buyers)
	e.Catalog = services.NewCatalogService(e.Products, e.Phases, services.NewImageValidator(images))
	e.Buy = services.NewPurchaseService(e.Products, e.Purchases, e.Sellers, e.Phases, e.Clock)
	e.Rankings = services.NewRankingService(e.Products, e.Purchases, e.Meta, e.Clock, rand.New(rand.NewSource(7)))
	e.Leaderboard = services.NewLeaderboardService(e.Sellers, e.Purchases, e.Clock, e.Metadata)
	return e
}

func (e *env) seller(t *testing.T, battle string) domain.Seller {
	t.Helper()
	s, err := e.Auth.RegisterSeller(context.Background(), battle)
	require.NoError(t, err)
	return s
}

func (e *env) buyer(t *testing.T, battle, name string) domain.Buyer {
	t.Helper()
	b, err := e.Auth.RegisterBuyer(context.Background(), battle, name)
	require.NoError(t, err)
	return b
}

func (e *env) phase(t *testing.T, battle string, p domain.Phase) {
	t.Helper()
	_, err := e.Phases.Set(context.Background(), battle, p)
	require.NoError(t, err)
}

// budget lists a budget towel at price for s. The battle must be in a phase
// that allows product writes.
func (e *env) budget(t *testing.T, s domain.Seller, name string, price int) domain.Product {
	t.Helper()
	p, err := e.Catalog.Create(context.Background(), s, services.ProductInput{
		Name: name, ShortDescription: "soft", LongDescription: "very soft",
		PriceInCent: price, TowelVariant: domain.VariantBudget,
		ImageIDs: []string{"img-01-front"},
	})
	require.NoError(t, err)
	return p
}

func (e *env) purchase(t *testing.T, b domain.Buyer, productID string) domain.Purchase {
	t.Helper()
	p, err := e.Buy.Purchase(context.Background(), b, productID)
	require.NoError(t, err)
	return p
}
