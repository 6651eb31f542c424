package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/repos"
)

type ImageValidator struct {
	Images repos.ImageStore
}

func NewImageValidator(images repos.ImageStore) *ImageValidator {
	return &ImageValidator{Images: images}
}

// Validate checks that ids name existing images of a single category and,
// when variant is given, that the category is the one the variant requires.
// It returns the shared category.
func (v *ImageValidator) Validate(ctx context.Context, ids []string, variant *domain.TowelVariant) (string, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return "", marketerrors.Invalid("at least one image is required")
	}

	images, err := v.Images.ByIDs(ctx, ids)
	if err != nil {
		return "", fmt.Errorf("load images: %w", err)
	}
	byID := make(map[string]domain.Image, len(images))
	for _, img := range images {
		byID[img.ID] = img
	}

	var missing, uncategorized []string
	cats := map[string]bool{}
	for _, id := range ids {
		img, ok := byID[id]
		switch {
		case !ok:
			missing = append(missing, id)
		case img.ProductNumber == "":
			uncategorized = append(uncategorized, id)
		default:
			cats[img.ProductNumber] = true
		}
	}
	if len(missing) > 0 {
		return "", marketerrors.Missing("image", missing...)
	}
	if len(uncategorized) > 0 {
		return "", marketerrors.Invalid("images have no category: %s", strings.Join(uncategorized, ", "))
	}
	if len(cats) > 1 {
		list := make([]string, 0, len(cats))
		for c := range cats {
			list = append(list, c)
		}
		sort.Strings(list)
		return "", marketerrors.Invalid("images span multiple categories: %s", strings.Join(list, ", "))
	}

	var category string
	for c := range cats {
		category = c
	}
	if variant != nil {
		spec, ok := domain.SpecFor(*variant)
		if !ok {
			return "", marketerrors.Invalid("unknown towel_variant %q", *variant)
		}
		if spec.Category != category {
			return "", marketerrors.Invalid("towel_variant %s requires images of category %s, got %s", *variant, spec.Category, category)
		}
	}
	return category, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
