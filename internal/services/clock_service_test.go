package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/services"
)

func TestClockService_DefaultsAndBounds(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	day, err := e.Clock.Day(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, 0, day)
	round, err := e.Clock.Round(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, 1, round)

	_, err = e.Clock.SetDay(ctx, "A", -1)
	require.ErrorIs(t, err, marketerrors.ErrValidation)
	require.EqualError(t, err, "Day must be a non-negative integer")
	_, err = e.Clock.SetRound(ctx, "A", 0)
	require.ErrorIs(t, err, marketerrors.ErrValidation)
	require.EqualError(t, err, "Round must be a positive integer")

	_, err = e.Clock.SetDay(ctx, "A", 0)
	require.NoError(t, err)
	_, err = e.Clock.SetDay(ctx, "A", 4)
	require.NoError(t, err)
	_, err = e.Clock.SetRound(ctx, "A", 3)
	require.NoError(t, err)

	day, _ = e.Clock.Day(ctx, "A")
	round, _ = e.Clock.Round(ctx, "A")
	require.Equal(t, 4, day)
	require.Equal(t, 3, round)

	day, _ = e.Clock.Day(ctx, "B")
	require.Equal(t, 0, day)
}

func TestClockService_UnparseableFallsBack(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	require.NoError(t, e.Meta.Put(ctx, "A", domain.KeyDay, "tuesday"))
	require.NoError(t, e.Meta.Put(ctx, "A", domain.KeyRound, "0"))

	day, err := e.Clock.Day(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, domain.DefaultDay, day)
	round, err := e.Clock.Round(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, domain.DefaultRound, round)
}

func TestClockService_RoundCap(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.Clock.SetRound(ctx, "A", services.MaxRound+1)
	require.ErrorIs(t, err, marketerrors.ErrValidation)
	require.EqualError(t, err, "Round must not exceed 10000")

	got, err := e.Clock.SetRound(ctx, "A", services.MaxRound)
	require.NoError(t, err)
	require.Equal(t, services.MaxRound, got)

	// a value written around the service is ignored
	require.NoError(t, e.Meta.Put(ctx, "B", domain.KeyRound, "1000000000"))
	round, err := e.Clock.Round(ctx, "B")
	require.NoError(t, err)
	require.Equal(t, domain.DefaultRound, round)

	lb, err := e.Leaderboard.Leaderboard(ctx, "B")
	require.NoError(t, err)
	require.Len(t, lb.Rounds, domain.DefaultRound)
}
