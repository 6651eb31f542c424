package services

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/repos"
)

// MetadataService writes typed metadata values and reads the optional
// coordination entries (seller display names, backend link).
type MetadataService struct {
	Meta repos.MetadataStore
}

func NewMetadataService(meta repos.MetadataStore) *MetadataService {
	return &MetadataService{Meta: meta}
}

func putValue(ctx context.Context, meta repos.MetadataStore, battleID string, v domain.MetaValue) error {
	if strings.TrimSpace(battleID) == "" {
		return marketerrors.Invalid("battle_id is required")
	}
	enc, err := v.Encode()
	if err != nil {
		return fmt.Errorf("encode %s: %w", v.MetaKey(), err)
	}
	if err := meta.Put(ctx, battleID, v.MetaKey(), enc); err != nil {
		return fmt.Errorf("write %s: %w", v.MetaKey(), err)
	}
	return nil
}

// Put stores any metadata kind. Raw values may not target reserved keys.
func (s *MetadataService) Put(ctx context.Context, battleID string, v domain.MetaValue) error {
	if raw, ok := v.(domain.RawValue); ok {
		if strings.TrimSpace(raw.Key) == "" {
			return marketerrors.Invalid("metadata key is required")
		}
		if domain.IsReservedKey(raw.Key) {
			return marketerrors.Invalid("metadata key %q is reserved", raw.Key)
		}
	}
	return putValue(ctx, s.Meta, battleID, v)
}

func (s *MetadataService) GetRaw(ctx context.Context, battleID, key string) (string, bool, error) {
	v, found, err := s.Meta.Get(ctx, battleID, key)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return v, found, nil
}

func (s *MetadataService) List(ctx context.Context, battleID string) ([]domain.Metadata, error) {
	return s.Meta.ListByBattle(ctx, battleID)
}

// SellerNames returns an empty map when nothing usable is stored.
func (s *MetadataService) SellerNames(ctx context.Context, battleID string) (domain.SellerNames, error) {
	raw, _, err := s.GetRaw(ctx, battleID, domain.KeySellerNames)
	if err != nil {
		return nil, err
	}
	return domain.DecodeSellerNames(raw), nil
}

func (s *MetadataService) SetSellerNames(ctx context.Context, battleID string, names map[string]string) error {
	return putValue(ctx, s.Meta, battleID, domain.SellerNames(names))
}

// BattleLink returns the backend URL registered for the battle, or "".
func (s *MetadataService) BattleLink(ctx context.Context, battleID string) (string, error) {
	raw, _, err := s.GetRaw(ctx, battleID, domain.KeyBackendURL)
	return raw, err
}

func (s *MetadataService) SetBattleLink(ctx context.Context, battleID, backendURL string) error {
	if strings.TrimSpace(backendURL) == "" {
		return marketerrors.Invalid("backend_url is required")
	}
	return putValue(ctx, s.Meta, battleID, domain.BattleLink{BackendURL: backendURL})
}
