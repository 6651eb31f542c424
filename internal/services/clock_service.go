package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/repos"
)

// MaxRound bounds the round counter; the leaderboard reports every round up
// to the current one.
const MaxRound = 10000

// ClockService holds the per-battle day and round counters. Only the
// orchestrator advances them.
type ClockService struct {
	Meta repos.MetadataStore
}

func NewClockService(meta repos.MetadataStore) *ClockService {
	return &ClockService{Meta: meta}
}

func (s *ClockService) Day(ctx context.Context, battleID string) (int, error) {
	return s.counter(ctx, battleID, domain.KeyDay, domain.DefaultDay, 0, math.MaxInt)
}

func (s *ClockService) SetDay(ctx context.Context, battleID string, day int) (int, error) {
	if day < 0 {
		return 0, marketerrors.Invalid("Day must be a non-negative integer")
	}
	if err := putValue(ctx, s.Meta, battleID, domain.DayValue{Day: day}); err != nil {
		return 0, err
	}
	return day, nil
}

func (s *ClockService) Round(ctx context.Context, battleID string) (int, error) {
	return s.counter(ctx, battleID, domain.KeyRound, domain.DefaultRound, 1, MaxRound)
}

func (s *ClockService) SetRound(ctx context.Context, battleID string, round int) (int, error) {
	if round < 1 {
		return 0, marketerrors.Invalid("Round must be a positive integer")
	}
	if round > MaxRound {
		return 0, marketerrors.Invalid(fmt.Sprintf("Round must not exceed %d", MaxRound))
	}
	if err := putValue(ctx, s.Meta, battleID, domain.RoundValue{Round: round}); err != nil {
		return 0, err
	}
	return round, nil
}

// counter reads an integer key, falling back to def when the value is
// missing, unparseable or outside [floor, ceil].
func (s *ClockService) counter(ctx context.Context, battleID, key string, def, floor, ceil int) (int, error) {
	raw, found, err := s.Meta.Get(ctx, battleID, key)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < floor || n > ceil {
		return def, nil
	}
	return n, nil
}
