package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/repos"
)

const rankingAttempts = 3

type RankedProduct struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SalesCount  int    `json:"sales_count"`
	Ranking     int    `json:"ranking"`
}

type RankingResult struct {
	UpdatedCount int             `json:"updated_count"`
	Top          []RankedProduct `json:"top_products,omitempty"`
}

// RankingService recomputes every product's ranking in a battle. Writes are
// guarded by the battle's ranking revision; a concurrent writer makes the
// pass start over from fresh state.
type RankingService struct {
	Products  repos.ProductStore
	Purchases repos.PurchaseStore
	Meta      repos.MetadataStore
	Clock     *ClockService

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

func NewRankingService(products repos.ProductStore, purchases repos.PurchaseStore, meta repos.MetadataStore, clock *ClockService, rnd *rand.Rand) *RankingService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RankingService{Products: products, Purchases: purchases, Meta: meta, Clock: clock, rnd: rnd}
}

// InitializeRandom assigns a uniformly random permutation of 1..N.
func (s *RankingService) InitializeRandom(ctx context.Context, battleID string) (RankingResult, error) {
	return s.apply(ctx, battleID, func(products []domain.Product) ([]domain.RankingUpdate, []RankedProduct, error) {
		ranks := make([]int, len(products))
		for i := range ranks {
			ranks[i] = i + 1
		}
		s.mu.Lock()
		s.rnd.Shuffle(len(ranks), func(i, j int) { ranks[i], ranks[j] = ranks[j], ranks[i] })
		s.mu.Unlock()

		updates := make([]domain.RankingUpdate, len(products))
		for i, p := range products {
			updates[i] = domain.RankingUpdate{ProductID: p.ID, Ranking: ranks[i]}
		}
		return updates, nil, nil
	})
}

// UpdateBySales ranks products by purchases in the current round, most sold
// first; ties keep the store order. The best max(1, N/5) products that sold
// at all become bestsellers. It returns the top five.
func (s *RankingService) UpdateBySales(ctx context.Context, battleID string) (RankingResult, error) {
	return s.apply(ctx, battleID, func(products []domain.Product) ([]domain.RankingUpdate, []RankedProduct, error) {
		round, err := s.Clock.Round(ctx, battleID)
		if err != nil {
			return nil, nil, err
		}
		counts, err := s.Purchases.CountByProductForRound(ctx, battleID, round)
		if err != nil {
			return nil, nil, fmt.Errorf("count sales: %w", err)
		}

		sorted := make([]domain.Product, len(products))
		copy(sorted, products)
		sort.SliceStable(sorted, func(i, j int) bool {
			return counts[sorted[i].ID] > counts[sorted[j].ID]
		})

		bestsellers := len(sorted) / 5
		if bestsellers < 1 {
			bestsellers = 1
		}
		updates := make([]domain.RankingUpdate, len(sorted))
		top := make([]RankedProduct, 0, 5)
		for i, p := range sorted {
			best := i < bestsellers && counts[p.ID] > 0
			updates[i] = domain.RankingUpdate{ProductID: p.ID, Ranking: i + 1, Bestseller: &best}
			if i < 5 {
				top = append(top, RankedProduct{ProductID: p.ID, ProductName: p.Name, SalesCount: counts[p.ID], Ranking: i + 1})
			}
		}
		return updates, top, nil
	})
}

type rankFunc func(products []domain.Product) ([]domain.RankingUpdate, []RankedProduct, error)

func (s *RankingService) apply(ctx context.Context, battleID string, rank rankFunc) (RankingResult, error) {
	for attempt := 1; ; attempt++ {
		rev, err := s.revision(ctx, battleID)
		if err != nil {
			return RankingResult{}, err
		}
		products, err := s.Products.ListByBattle(ctx, battleID)
		if err != nil {
			return RankingResult{}, fmt.Errorf("list products: %w", err)
		}
		if len(products) == 0 {
			return RankingResult{Top: []RankedProduct{}}, nil
		}
		updates, top, err := rank(products)
		if err != nil {
			return RankingResult{}, err
		}

		err = s.Products.ApplyRankings(ctx, battleID, rev, updates)
		if err == nil {
			return RankingResult{UpdatedCount: len(updates), Top: top}, nil
		}
		if !errors.Is(err, marketerrors.ErrRankingConflict) || attempt == rankingAttempts {
			return RankingResult{}, err
		}
	}
}

func (s *RankingService) revision(ctx context.Context, battleID string) (int, error) {
	raw, found, err := s.Meta.Get(ctx, battleID, domain.KeyRankingRevision)
	if err != nil {
		return 0, fmt.Errorf("read ranking revision: %w", err)
	}
	if !found {
		return 0, nil
	}
	n, _ := strconv.Atoi(raw)
	return n, nil
}
