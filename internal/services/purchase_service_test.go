package services_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/services"
)

func TestPurchaseService_PhaseGate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := e.seller(t, "A")
	p := e.budget(t, s, "Cozy", 1500)
	b := e.buyer(t, "A", "Bob")

	_, err := e.Buy.Purchase(ctx, b, p.ID)
	require.ErrorIs(t, err, marketerrors.ErrPhaseViolation)

	e.phase(t, "A", domain.PhaseBuyerShopping)
	_, err = e.Buy.Purchase(ctx, b, p.ID)
	require.NoError(t, err)

	e.phase(t, "A", domain.PhaseOpen)
	_, err = e.Buy.Purchase(ctx, b, p.ID)
	require.NoError(t, err)
}

func TestPurchaseService_SnapshotsAndStamps(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := e.seller(t, "A")
	p := e.budget(t, s, "Cozy", 1500)
	b := e.buyer(t, "A", "Bob")

	_, err := e.Clock.SetDay(ctx, "A", 3)
	require.NoError(t, err)
	_, err = e.Clock.SetRound(ctx, "A", 2)
	require.NoError(t, err)
	e.phase(t, "A", domain.PhaseOpen)

	first := e.purchase(t, b, p.ID)
	require.Equal(t, 3, first.PurchasedAt)
	require.Equal(t, 2, first.Round)
	require.Equal(t, 1500, first.PriceOfPurchase)
	require.Equal(t, 800, first.WholesaleCostAtPurchase)

	// repricing later does not touch history
	newPrice := 500
	_, err = e.Catalog.Update(ctx, s, p.ID, services.ProductPatch{PriceInCent: &newPrice})
	require.NoError(t, err)
	second := e.purchase(t, b, p.ID)
	require.Equal(t, 500, second.PriceOfPurchase)

	stats, err := e.Buy.SellerStats(ctx, "A", s.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stats.PurchaseCount)
	require.Equal(t, 2000, stats.RevenueCents)
	require.Equal(t, 1600, stats.CostCents)
	require.Equal(t, 400, stats.ProfitCents)
	require.Len(t, stats.Products, 1)
	require.Equal(t, "Cozy", stats.Products[0].ProductName)
}

func TestPurchaseService_BattleScope(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := e.seller(t, "A")
	p := e.budget(t, s, "Cozy", 1500)
	outsider := e.buyer(t, "B", "Eve")
	e.phase(t, "B", domain.PhaseOpen)

	_, err := e.Buy.Purchase(ctx, outsider, p.ID)
	require.ErrorIs(t, err, marketerrors.ErrNotFound)

	_, err = e.Buy.SellerStats(ctx, "B", s.ID)
	require.ErrorIs(t, err, marketerrors.ErrNotFound)
}

func TestPurchaseService_SalesBySeller(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s1, s2, idle := e.seller(t, "A"), e.seller(t, "A"), e.seller(t, "A")
	p1 := e.budget(t, s1, "One", 1000)
	p2 := e.budget(t, s2, "Two", 2000)
	b := e.buyer(t, "A", "Bob")
	e.phase(t, "A", domain.PhaseBuyerShopping)

	e.purchase(t, b, p2.ID)
	e.purchase(t, b, p2.ID)
	e.purchase(t, b, p1.ID)

	sales, err := e.Buy.SalesBySeller(ctx, "A")
	require.NoError(t, err)
	require.Len(t, sales, 3)
	require.Equal(t, s2.ID, sales[0].SellerID)
	require.Equal(t, 2, sales[0].PurchaseCount)
	require.Equal(t, 2400, sales[0].ProfitCents)
	require.Equal(t, s1.ID, sales[1].SellerID)
	require.Equal(t, idle.ID, sales[2].SellerID)
	require.Zero(t, sales[2].PurchaseCount)
}

func TestPurchaseService_ConcurrentBuyersOnFileDB(t *testing.T) {
	ctx := context.Background()
	e := newEnvAt(t, filepath.Join(t.TempDir(), "market.db"))
	s := e.seller(t, "A")
	p := e.budget(t, s, "Cozy", 1500)
	e.phase(t, "A", domain.PhaseBuyerShopping)

	const n = 30
	buyers := make([]domain.Buyer, n)
	for i := range buyers {
		buyers[i] = e.buyer(t, "A", fmt.Sprintf("buyer-%d", i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for _, b := range buyers {
		wg.Add(1)
		go func(b domain.Buyer) {
			defer wg.Done()
			if _, err := e.Buy.Purchase(ctx, b, p.ID); err != nil {
				errs <- err
				return
			}
			if _, err := e.Rankings.UpdateBySales(ctx, "A"); err != nil && !errors.Is(err, marketerrors.ErrRankingConflict) {
				errs <- err
			}
		}(b)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := e.Purchases.ListByBattle(ctx, "A")
	require.NoError(t, err)
	require.Len(t, got, n)
}
