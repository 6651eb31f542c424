package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/repos"
	"marketplace/internal/validate"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ProductInput is what a seller submits to list a product. ID is optional.
type ProductInput struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	ShortDescription string              `json:"short_description"`
	LongDescription  string              `json:"long_description"`
	PriceInCent      int                 `json:"price_in_cent"`
	Currency         string              `json:"currency"`
	TowelVariant     domain.TowelVariant `json:"towel_variant"`
	ImageIDs         []string            `json:"image_ids"`
}

// ProductPatch changes only the fields that are set. A nil ImageIDs keeps
// the current images.
type ProductPatch struct {
	Name             *string              `json:"name"`
	ShortDescription *string              `json:"short_description"`
	LongDescription  *string              `json:"long_description"`
	PriceInCent      *int                 `json:"price_in_cent"`
	Currency         *string              `json:"currency"`
	TowelVariant     *domain.TowelVariant `json:"towel_variant"`
	ImageIDs         []string             `json:"image_ids"`
}

type CatalogService struct {
	Products repos.ProductStore
	Phases   *PhaseService
	Images   *ImageValidator
}

func NewCatalogService(products repos.ProductStore, phases *PhaseService, images *ImageValidator) *CatalogService {
	return &CatalogService{Products: products, Phases: phases, Images: images}
}

func (s *CatalogService) Create(ctx context.Context, seller domain.Seller, in ProductInput) (domain.Product, error) {
	if _, err := s.Phases.Ensure(ctx, seller.BattleID, domain.PhaseSellerManagement); err != nil {
		return domain.Product{}, err
	}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return domain.Product{}, marketerrors.Invalid("name is required")
	case strings.TrimSpace(in.ShortDescription) == "":
		return domain.Product{}, marketerrors.Invalid("short_description is required")
	case strings.TrimSpace(in.LongDescription) == "":
		return domain.Product{}, marketerrors.Invalid("long_description is required")
	case in.PriceInCent <= 0:
		return domain.Product{}, marketerrors.Invalid("price_in_cent must be greater than 0")
	}
	spec, ok := domain.SpecFor(in.TowelVariant)
	if !ok {
		return domain.Product{}, marketerrors.Invalid("towel_variant must be one of budget, mid_tier, premium")
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = newProductID(name)
	} else if _, ok := validate.ID(id); !ok {
		return domain.Product{}, marketerrors.Invalid("invalid product id %q", in.ID)
	}

	variant := in.TowelVariant
	if _, err := s.Images.Validate(ctx, in.ImageIDs, &variant); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:               id,
		BattleID:         seller.BattleID,
		SellerID:         seller.ID,
		Name:             name,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		PriceInCent:      in.PriceInCent,
		Currency:         currency(in.Currency),
		ImageIDs:         dedupe(in.ImageIDs),
	}
	spec.Apply(&p)

	if err := s.Products.Create(ctx, p); err != nil {
		if errors.Is(err, marketerrors.ErrValidation) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return s.Products.ByID(ctx, p.BattleID, p.ID)
}

func (s *CatalogService) Update(ctx context.Context, seller domain.Seller, productID string, patch ProductPatch) (domain.Product, error) {
	p, err := s.Products.ByID(ctx, seller.BattleID, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if p.SellerID != seller.ID {
		return domain.Product{}, marketerrors.ErrOwnership
	}
	if _, err := s.Phases.Ensure(ctx, seller.BattleID, domain.PhaseSellerManagement); err != nil {
		return domain.Product{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return domain.Product{}, marketerrors.Invalid("name must not be empty")
		}
		p.Name = name
	}
	if patch.ShortDescription != nil {
		p.ShortDescription = *patch.ShortDescription
	}
	if patch.LongDescription != nil {
		p.LongDescription = *patch.LongDescription
	}
	if patch.PriceInCent != nil {
		if *patch.PriceInCent <= 0 {
			return domain.Product{}, marketerrors.Invalid("price_in_cent must be greater than 0")
		}
		p.PriceInCent = *patch.PriceInCent
	}
	if patch.Currency != nil {
		p.Currency = currency(*patch.Currency)
	}

	relink := patch.ImageIDs != nil
	if relink || patch.TowelVariant != nil {
		variant := p.TowelVariant
		if patch.TowelVariant != nil {
			variant = *patch.TowelVariant
		}
		spec, ok := domain.SpecFor(variant)
		if !ok {
			return domain.Product{}, marketerrors.Invalid("towel_variant must be one of budget, mid_tier, premium")
		}
		images := p.ImageIDs
		if relink {
			images = patch.ImageIDs
		}
		if _, err := s.Images.Validate(ctx, images, &variant); err != nil {
			return domain.Product{}, err
		}
		spec.Apply(&p)
		p.ImageIDs = dedupe(images)
	}

	if err := s.Products.Update(ctx, p, relink); err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	return s.Products.ByID(ctx, p.BattleID, p.ID)
}

func (s *CatalogService) Get(ctx context.Context, battleID, id string) (domain.Product, error) {
	return s.Products.ByID(ctx, battleID, id)
}

func (s *CatalogService) Search(ctx context.Context, battleID string, f repos.SearchFilter) ([]domain.Product, error) {
	if strings.TrimSpace(battleID) == "" {
		return nil, marketerrors.Invalid("battle_id is required")
	}
	return s.Products.Search(ctx, battleID, f)
}

// SetRanking overwrites one product's ranking.
func (s *CatalogService) SetRanking(ctx context.Context, battleID, productID string, rank int) error {
	return s.SetRankings(ctx, battleID, []domain.RankingUpdate{{ProductID: productID, Ranking: rank}})
}

// SetRankings overwrites several rankings at once. Nothing is written when
// any product is unknown.
func (s *CatalogService) SetRankings(ctx context.Context, battleID string, ranks []domain.RankingUpdate) error {
	if len(ranks) == 0 {
		return marketerrors.Invalid("no rankings given")
	}
	for _, u := range ranks {
		if u.Ranking < 1 {
			return marketerrors.Invalid("ranking for %s must be at least 1", u.ProductID)
		}
	}
	return s.Products.OverwriteRankings(ctx, battleID, ranks)
}

func newProductID(name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "product"
	}
	return base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func currency(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return "USD"
	}
	return c
}
