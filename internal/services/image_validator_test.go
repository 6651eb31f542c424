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

func variantp(v domain.TowelVariant) *domain.TowelVariant { return &v }

func TestImageValidator_Validate(t *testing.T) {
	t.Parallel()
	imgs := []domain.Image{
		{ID: "a1", ProductNumber: "01"},
		{ID: "a2", ProductNumber: "01"},
		{ID: "b1", ProductNumber: "02"},
		{ID: "c1", ProductNumber: "03"},
		{ID: "loose"},
	}
	cases := []struct {
		name    string
		ids     []string
		variant *domain.TowelVariant
		wantCat string
		wantErr error
		errText []string
	}{
		{name: "single category", ids: []string{"a1", "a2"}, wantCat: "01"},
		{name: "duplicates collapse", ids: []string{"a1", "a1"}, variant: variantp(domain.VariantBudget), wantCat: "01"},
		{name: "matching variant", ids: []string{"b1"}, variant: variantp(domain.VariantMidTier), wantCat: "02"},
		{name: "empty", ids: nil, wantErr: marketerrors.ErrValidation},
		{name: "missing named", ids: []string{"a1", "nope", "gone"}, wantErr: marketerrors.ErrNotFound, errText: []string{"nope", "gone"}},
		{name: "mixed categories", ids: []string{"c1", "a1"}, wantErr: marketerrors.ErrValidation, errText: []string{"01", "03"}},
		{name: "uncategorized", ids: []string{"loose"}, wantErr: marketerrors.ErrValidation},
		{name: "variant mismatch", ids: []string{"a1"}, variant: variantp(domain.VariantPremium), wantErr: marketerrors.ErrValidation, errText: []string{"03", "01"}},
		{name: "unknown variant", ids: []string{"a1"}, variant: variantp("luxury"), wantErr: marketerrors.ErrValidation},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			store := repos.NewMockImageStore(ctrl)
			store.EXPECT().ByIDs(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, ids []string) ([]domain.Image, error) {
					var out []domain.Image
					for _, img := range imgs {
						for _, id := range ids {
							if img.ID == id {
								out = append(out, img)
							}
						}
					}
					return out, nil
				}).AnyTimes()

			cat, err := services.NewImageValidator(store).Validate(context.Background(), tc.ids, tc.variant)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, tc.wantCat, cat)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			for _, s := range tc.errText {
				require.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestImageValidator_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repos.NewMockImageStore(ctrl)
	boom := errors.New("timeout")
	store.EXPECT().ByIDs(gomock.Any(), []string{"a1"}).Return(nil, boom)

	_, err := services.NewImageValidator(store).Validate(context.Background(), []string{"a1"}, nil)
	require.ErrorIs(t, err, boom)
}
