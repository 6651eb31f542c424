package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/repos"
	"marketplace/internal/services"
)

func TestPhaseService_DefaultAndSet(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	p, err := e.Phases.Current(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, domain.PhaseSellerManagement, p)

	_, err = e.Phases.Set(ctx, "A", domain.PhaseBuyerShopping)
	require.NoError(t, err)
	_, err = e.Phases.Set(ctx, "A", domain.PhaseBuyerShopping)
	require.NoError(t, err)

	p, err = e.Phases.Current(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, domain.PhaseBuyerShopping, p)

	other, err := e.Phases.Current(ctx, "B")
	require.NoError(t, err)
	require.Equal(t, domain.PhaseSellerManagement, other)

	_, err = e.Phases.Set(ctx, "A", domain.Phase("closing"))
	require.ErrorIs(t, err, marketerrors.ErrValidation)
}

func TestPhaseService_CorruptedValueReadsDefault(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	require.NoError(t, e.Meta.Put(ctx, "A", domain.KeyPhase, "garbage"))

	p, err := e.Phases.Current(ctx, "A")
	require.NoError(t, err)
	require.Equal(t, domain.PhaseSellerManagement, p)
}

func TestPhaseService_Ensure(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		current domain.Phase
		allowed []domain.Phase
		ok      bool
	}{
		{"member", domain.PhaseBuyerShopping, []domain.Phase{domain.PhaseBuyerShopping}, true},
		{"open permits everything", domain.PhaseOpen, []domain.Phase{domain.PhaseSellerManagement}, true},
		{"open permits empty set", domain.PhaseOpen, nil, true},
		{"not member", domain.PhaseSellerManagement, []domain.Phase{domain.PhaseBuyerShopping}, false},
		{"empty set", domain.PhaseBuyerShopping, nil, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			e := newEnv(t)
			e.phase(t, "A", tc.current)

			got, err := e.Phases.Ensure(ctx, "A", tc.allowed...)
			if tc.ok {
				require.NoError(t, err)
				require.Equal(t, tc.current, got)
				return
			}
			var pv *marketerrors.PhaseViolation
			require.ErrorAs(t, err, &pv)
			require.ErrorIs(t, err, marketerrors.ErrPhaseViolation)
			require.Equal(t, string(tc.current), pv.Current)
			require.Contains(t, err.Error(), "Operation not allowed during phase '"+string(tc.current)+"'")
		})
	}
}

func TestPhaseService_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := repos.NewMockMetadataStore(ctrl)
	boom := errors.New("db down")
	meta.EXPECT().Get(gomock.Any(), "A", domain.KeyPhase).Return("", false, boom)

	_, err := services.NewPhaseService(meta).Ensure(context.Background(), "A", domain.PhaseOpen)
	require.ErrorIs(t, err, boom)
}
