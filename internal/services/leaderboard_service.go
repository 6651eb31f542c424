package services

import (
	"context"
	"fmt"
	"sort"

	"marketplace/internal/domain"
	"marketplace/internal/repos"
)

type Standing struct {
	SellerID      string `json:"seller_id"`
	SellerName    string `json:"seller_name,omitempty"`
	PurchaseCount int    `json:"purchase_count"`
	ProfitCents   int    `json:"total_profit_cents"`
}

type RoundBoard struct {
	Round         int        `json:"round"`
	PurchaseCount int        `json:"purchase_count"`
	Standings     []Standing `json:"standings"`
	Winners       []string   `json:"winners"`
}

type OverallStanding struct {
	Standing
	RoundWins int `json:"round_wins"`
}

type Leaderboard struct {
	BattleID     string            `json:"battle_id"`
	CurrentRound int               `json:"current_round"`
	Rounds       []RoundBoard      `json:"rounds"`
	Overall      []OverallStanding `json:"overall"`
	Winners      []string          `json:"winners"`
}

// LeaderboardService ranks sellers by profit per round and by rounds won
// overall.
type LeaderboardService struct {
	Sellers   repos.SellerStore
	Purchases repos.PurchaseStore
	Clock     *ClockService
	Meta      *MetadataService
}

func NewLeaderboardService(sellers repos.SellerStore, purchases repos.PurchaseStore, clock *ClockService, meta *MetadataService) *LeaderboardService {
	return &LeaderboardService{Sellers: sellers, Purchases: purchases, Clock: clock, Meta: meta}
}

// Leaderboard covers rounds 1..current round plus any later round seen in
// purchases. Every seller of the battle appears in every round. Any store
// error aborts the whole computation.
func (s *LeaderboardService) Leaderboard(ctx context.Context, battleID string) (Leaderboard, error) {
	sellers, err := s.Sellers.ListByBattle(ctx, battleID)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("list sellers: %w", err)
	}
	rows, err := s.Purchases.ListWithSeller(ctx, battleID)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("list purchases: %w", err)
	}
	current, err := s.Clock.Round(ctx, battleID)
	if err != nil {
		return Leaderboard{}, err
	}
	names, err := s.Meta.SellerNames(ctx, battleID)
	if err != nil {
		return Leaderboard{}, err
	}
	return buildLeaderboard(battleID, current, sellers, rows, names), nil
}

func buildLeaderboard(battleID string, currentRound int, sellers []domain.Seller, rows []repos.PurchaseRow, names domain.SellerNames) Leaderboard {
	ids := make([]string, 0, len(sellers))
	known := map[string]bool{}
	for _, sl := range sellers {
		ids = append(ids, sl.ID)
		known[sl.ID] = true
	}

	rounds := map[int]bool{}
	for r := 1; r <= currentRound; r++ {
		rounds[r] = true
	}
	type key struct {
		seller string
		round  int
	}
	cells := map[key]*Standing{}
	for _, row := range rows {
		if !known[row.SellerID] {
			ids = append(ids, row.SellerID)
			known[row.SellerID] = true
		}
		rounds[row.Round] = true
		k := key{row.SellerID, row.Round}
		c, ok := cells[k]
		if !ok {
			c = &Standing{SellerID: row.SellerID}
			cells[k] = c
		}
		c.PurchaseCount++
		c.ProfitCents += row.Profit()
	}

	roundList := make([]int, 0, len(rounds))
	for r := range rounds {
		roundList = append(roundList, r)
	}
	sort.Ints(roundList)

	overall := make(map[string]*OverallStanding, len(ids))
	for _, id := range ids {
		overall[id] = &OverallStanding{Standing: Standing{SellerID: id, SellerName: names[id]}}
	}

	lb := Leaderboard{BattleID: battleID, CurrentRound: currentRound, Rounds: []RoundBoard{}}
	for _, r := range roundList {
		board := RoundBoard{Round: r, Standings: make([]Standing, 0, len(ids)), Winners: []string{}}
		for _, id := range ids {
			st := Standing{SellerID: id, SellerName: names[id]}
			if c, ok := cells[key{id, r}]; ok {
				st.PurchaseCount, st.ProfitCents = c.PurchaseCount, c.ProfitCents
			}
			board.PurchaseCount += st.PurchaseCount
			board.Standings = append(board.Standings, st)

			o := overall[id]
			o.PurchaseCount += st.PurchaseCount
			o.ProfitCents += st.ProfitCents
		}
		sort.Slice(board.Standings, func(i, j int) bool {
			a, b := board.Standings[i], board.Standings[j]
			if a.ProfitCents != b.ProfitCents {
				return a.ProfitCents > b.ProfitCents
			}
			if a.PurchaseCount != b.PurchaseCount {
				return a.PurchaseCount > b.PurchaseCount
			}
			return a.SellerID < b.SellerID
		})
		// an empty round has no winners
		if board.PurchaseCount > 0 && len(board.Standings) > 0 {
			best := board.Standings[0].ProfitCents
			for _, st := range board.Standings {
				if st.ProfitCents != best {
					break
				}
				board.Winners = append(board.Winners, st.SellerID)
				overall[st.SellerID].RoundWins++
			}
		}
		lb.Rounds = append(lb.Rounds, board)
	}

	lb.Overall = make([]OverallStanding, 0, len(ids))
	for _, id := range ids {
		lb.Overall = append(lb.Overall, *overall[id])
	}
	sort.Slice(lb.Overall, func(i, j int) bool {
		a, b := lb.Overall[i], lb.Overall[j]
		if a.RoundWins != b.RoundWins {
			return a.RoundWins > b.RoundWins
		}
		if a.ProfitCents != b.ProfitCents {
			return a.ProfitCents > b.ProfitCents
		}
		if a.PurchaseCount != b.PurchaseCount {
			return a.PurchaseCount > b.PurchaseCount
		}
		return a.SellerID < b.SellerID
	})

	lb.Winners = []string{}
	if len(lb.Overall) > 0 {
		most := lb.Overall[0].RoundWins
		for _, o := range lb.Overall {
			if o.RoundWins != most {
				break
			}
			lb.Winners = append(lb.Winners, o.SellerID)
		}
	}
	return lb
}
