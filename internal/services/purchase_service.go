package services

import (
	"context"
	"fmt"
	"sort"

	"marketplace/internal/domain"
	"marketplace/internal/repos"

	"github.com/google/uuid"
)

type PurchaseService struct {
	Products  repos.ProductStore
	Purchases repos.PurchaseStore
	Sellers   repos.SellerStore
	Phases    *PhaseService
	Clock     *ClockService
}

func NewPurchaseService(products repos.ProductStore, purchases repos.PurchaseStore, sellers repos.SellerStore, phases *PhaseService, clock *ClockService) *PurchaseService {
	return &PurchaseService{Products: products, Purchases: purchases, Sellers: sellers, Phases: phases, Clock: clock}
}

// Purchase records one buy of productID by buyer. Price and wholesale cost
// are copied from the product; day and round come from the battle clock.
func (s *PurchaseService) Purchase(ctx context.Context, buyer domain.Buyer, productID string) (domain.Purchase, error) {
	if _, err := s.Phases.Ensure(ctx, buyer.BattleID, domain.PhaseBuyerShopping); err != nil {
		return domain.Purchase{}, err
	}
	product, err := s.Products.ByID(ctx, buyer.BattleID, productID)
	if err != nil {
		return domain.Purchase{}, err
	}
	day, err := s.Clock.Day(ctx, buyer.BattleID)
	if err != nil {
		return domain.Purchase{}, err
	}
	round, err := s.Clock.Round(ctx, buyer.BattleID)
	if err != nil {
		return domain.Purchase{}, err
	}

	p := domain.Purchase{
		ID:                      uuid.NewString(),
		ProductID:               product.ID,
		BuyerID:                 buyer.ID,
		BattleID:                buyer.BattleID,
		PurchasedAt:             day,
		Round:                   round,
		PriceOfPurchase:         product.PriceInCent,
		WholesaleCostAtPurchase: product.WholesaleCostCents,
	}
	if err := s.Purchases.Create(ctx, p); err != nil {
		return domain.Purchase{}, fmt.Errorf("create purchase: %w", err)
	}
	return p, nil
}

type ProductSales struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	PurchaseCount int    `json:"purchase_count"`
	RevenueCents  int    `json:"revenue_cents"`
	ProfitCents   int    `json:"profit_cents"`
}

type SellerStats struct {
	SellerID      string         `json:"seller_id"`
	BattleID      string         `json:"battle_id"`
	PurchaseCount int            `json:"purchase_count"`
	RevenueCents  int            `json:"revenue_cents"`
	CostCents     int            `json:"cost_cents"`
	ProfitCents   int            `json:"profit_cents"`
	Products      []ProductSales `json:"products"`
}

// SellerStats totals every purchase of the seller's products in the battle.
func (s *PurchaseService) SellerStats(ctx context.Context, battleID, sellerID string) (SellerStats, error) {
	if _, err := s.Sellers.ByID(ctx, battleID, sellerID); err != nil {
		return SellerStats{}, err
	}
	rows, err := s.Purchases.ListWithSeller(ctx, battleID)
	if err != nil {
		return SellerStats{}, fmt.Errorf("list purchases: %w", err)
	}

	out := SellerStats{SellerID: sellerID, BattleID: battleID, Products: []ProductSales{}}
	byProduct := map[string]*ProductSales{}
	var order []string
	for _, r := range rows {
		if r.SellerID != sellerID {
			continue
		}
		out.PurchaseCount++
		out.RevenueCents += r.PriceOfPurchase
		out.CostCents += r.WholesaleCostAtPurchase
		out.ProfitCents += r.Profit()

		ps, ok := byProduct[r.ProductID]
		if !ok {
			ps = &ProductSales{ProductID: r.ProductID, ProductName: r.ProductName}
			byProduct[r.ProductID] = ps
			order = append(order, r.ProductID)
		}
		ps.PurchaseCount++
		ps.RevenueCents += r.PriceOfPurchase
		ps.ProfitCents += r.Profit()
	}
	for _, id := range order {
		out.Products = append(out.Products, *byProduct[id])
	}
	sort.SliceStable(out.Products, func(i, j int) bool {
		return out.Products[i].PurchaseCount > out.Products[j].PurchaseCount
	})
	return out, nil
}

type SellerSales struct {
	SellerID      string `json:"seller_id"`
	PurchaseCount int    `json:"purchase_count"`
	RevenueCents  int    `json:"revenue_cents"`
	ProfitCents   int    `json:"profit_cents"`
}

// SalesBySeller lists every seller of the battle, including those with no
// sales, by purchase count descending then seller id.
func (s *PurchaseService) SalesBySeller(ctx context.Context, battleID string) ([]SellerSales, error) {
	sellers, err := s.Sellers.ListByBattle(ctx, battleID)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	rows, err := s.Purchases.ListWithSeller(ctx, battleID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	agg := make(map[string]*SellerSales, len(sellers))
	for _, sl := range sellers {
		agg[sl.ID] = &SellerSales{SellerID: sl.ID}
	}
	for _, r := range rows {
		a, ok := agg[r.SellerID]
		if !ok {
			a = &SellerSales{SellerID: r.SellerID}
			agg[r.SellerID] = a
		}
		a.PurchaseCount++
		a.RevenueCents += r.PriceOfPurchase
		a.ProfitCents += r.Profit()
	}

	out := make([]SellerSales, 0, len(agg))
	for _, a := range agg {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PurchaseCount != out[j].PurchaseCount {
			return out[i].PurchaseCount > out[j].PurchaseCount
		}
		return out[i].SellerID < out[j].SellerID
	})
	return out, nil
}
