package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/repos"

	"github.com/google/uuid"
)

// AuthService registers battle participants and resolves their bearer tokens.
type AuthService struct {
	Sellers repos.SellerStore
	Buyers  repos.BuyerStore
}

func NewAuthService(sellers repos.SellerStore, buyers repos.BuyerStore) *AuthService {
	return &AuthService{Sellers: sellers, Buyers: buyers}
}

func (s *AuthService) RegisterSeller(ctx context.Context, battleID string) (domain.Seller, error) {
	battleID = strings.TrimSpace(battleID)
	if battleID == "" {
		return domain.Seller{}, marketerrors.Invalid("battle_id is required")
	}
	if strings.Contains(battleID, ":") {
		return domain.Seller{}, marketerrors.Invalid("battle_id must not contain ':'")
	}
	id := uuid.NewString()
	token, err := auth.Issue(id, battleID)
	if err != nil {
		return domain.Seller{}, err
	}
	seller := domain.Seller{ID: id, BattleID: battleID, AuthToken: token}
	if err := s.Sellers.Create(ctx, seller); err != nil {
		return domain.Seller{}, fmt.Errorf("create seller: %w", err)
	}
	return seller, nil
}

func (s *AuthService) RegisterBuyer(ctx context.Context, battleID, name string) (domain.Buyer, error) {
	battleID, name = strings.TrimSpace(battleID), strings.TrimSpace(name)
	if battleID == "" {
		return domain.Buyer{}, marketerrors.Invalid("battle_id is required")
	}
	if strings.Contains(battleID, ":") {
		return domain.Buyer{}, marketerrors.Invalid("battle_id must not contain ':'")
	}
	if name == "" {
		return domain.Buyer{}, marketerrors.Invalid("name is required")
	}
	id := uuid.NewString()
	token, err := auth.Issue(id, battleID)
	if err != nil {
		return domain.Buyer{}, err
	}
	buyer := domain.Buyer{ID: id, BattleID: battleID, AuthToken: token, Name: name}
	if err := s.Buyers.Create(ctx, buyer); err != nil {
		return domain.Buyer{}, fmt.Errorf("create buyer: %w", err)
	}
	return buyer, nil
}

// SellerFromToken accepts a token only if it is stored for a seller whose
// id and battle match the token's own segments.
func (s *AuthService) SellerFromToken(ctx context.Context, token string) (domain.Seller, error) {
	id, battleID, ok := auth.Decode(token)
	if !ok {
		return domain.Seller{}, marketerrors.ErrAuthentication
	}
	seller, err := s.Sellers.ByToken(ctx, token)
	if err != nil {
		return domain.Seller{}, authLookupErr(err)
	}
	if seller.ID != id || seller.BattleID != battleID {
		return domain.Seller{}, marketerrors.ErrAuthentication
	}
	return seller, nil
}

func (s *AuthService) BuyerFromToken(ctx context.Context, token string) (domain.Buyer, error) {
	id, battleID, ok := auth.Decode(token)
	if !ok {
		return domain.Buyer{}, marketerrors.ErrAuthentication
	}
	buyer, err := s.Buyers.ByToken(ctx, token)
	if err != nil {
		return domain.Buyer{}, authLookupErr(err)
	}
	if buyer.ID != id || buyer.BattleID != battleID {
		return domain.Buyer{}, marketerrors.ErrAuthentication
	}
	return buyer, nil
}

func authLookupErr(err error) error {
	if errors.Is(err, marketerrors.ErrNotFound) {
		return marketerrors.ErrAuthentication
	}
	return fmt.Errorf("resolve token: %w", err)
}
