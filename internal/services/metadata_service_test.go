package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
)

func TestMetadataService_TypedValues(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	names, err := e.Metadata.SellerNames(ctx, "A")
	require.NoError(t, err)
	require.Empty(t, names)

	require.NoError(t, e.Metadata.SetSellerNames(ctx, "A", map[string]string{"s1": "Towel Co"}))
	names, err = e.Metadata.SellerNames(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, "Towel Co", names["s1"])

	link, err := e.Metadata.BattleLink(ctx, "A")
	require.NoError(t, err)
	require.Empty(t, link)
	require.ErrorIs(t, e.Metadata.SetBattleLink(ctx, "A", " "), marketerrors.ErrValidation)
	require.NoError(t, e.Metadata.SetBattleLink(ctx, "A", "http://localhost:9009"))
	link, _ = e.Metadata.BattleLink(ctx, "A")
	require.Equal(t, "http://localhost:9009", link)

	require.NoError(t, e.Metadata.Put(ctx, "A", domain.RoundValue{Round: 2}))
	round, _ := e.Clock.Round(ctx, "A")
	require.Equal(t, 2, round)
}

func TestMetadataService_MalformedSellerNames(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	require.NoError(t, e.Meta.Put(ctx, "A", domain.KeySellerNames, "{not json"))

	names, err := e.Metadata.SellerNames(ctx, "A")
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestMetadataService_RawValues(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	require.NoError(t, e.Metadata.Put(ctx, "A", domain.RawValue{Key: "agent_config", Value: "v1"}))
	v, found, err := e.Metadata.GetRaw(ctx, "A", "agent_config")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "v1", v)

	_, found, err = e.Metadata.GetRaw(ctx, "B", "agent_config")
	require.NoError(t, err)
	require.False(t, found)

	for _, key := range []string{domain.KeyPhase, domain.KeyDay, domain.KeyRound, domain.KeyRankingRevision} {
		err := e.Metadata.Put(ctx, "A", domain.RawValue{Key: key, Value: "x"})
		require.ErrorIs(t, err, marketerrors.ErrValidation, key)
	}
	require.ErrorIs(t, e.Metadata.Put(ctx, "", domain.RawValue{Key: "k", Value: "v"}), marketerrors.ErrValidation)

	rows, err := e.Metadata.List(ctx, "A")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
