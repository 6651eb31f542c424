package services

import (
	"context"
	"fmt"

	"marketplace/internal/domain"
	"marketplace/internal/marketerrors"
	"marketplace/internal/repos"
)

// PhaseService is the per-battle phase gate.
type PhaseService struct {
	Meta repos.MetadataStore
}

func NewPhaseService(meta repos.MetadataStore) *PhaseService {
	return &PhaseService{Meta: meta}
}

// Current returns the battle's phase. Unset or unrecognized stored values
// read as the default phase.
func (s *PhaseService) Current(ctx context.Context, battleID string) (domain.Phase, error) {
	raw, found, err := s.Meta.Get(ctx, battleID, domain.KeyPhase)
	if err != nil {
		return "", fmt.Errorf("read phase: %w", err)
	}
	if !found {
		return domain.DefaultPhase, nil
	}
	p, ok := domain.ParsePhase(raw)
	if !ok {
		return domain.DefaultPhase, nil
	}
	return p, nil
}

func (s *PhaseService) Set(ctx context.Context, battleID string, phase domain.Phase) (domain.Phase, error) {
	p, ok := domain.ParsePhase(string(phase))
	if !ok {
		return "", marketerrors.Invalid("unknown phase %q", phase)
	}
	if err := putValue(ctx, s.Meta, battleID, domain.PhaseValue{Phase: p}); err != nil {
		return "", err
	}
	return p, nil
}

// Ensure passes when the battle is OPEN or in one of allowed, and returns
// the current phase. Otherwise it returns a *marketerrors.PhaseViolation.
func (s *PhaseService) Ensure(ctx context.Context, battleID string, allowed ...domain.Phase) (domain.Phase, error) {
	current, err := s.Current(ctx, battleID)
	if err != nil {
		return "", err
	}
	if current == domain.PhaseOpen {
		return current, nil
	}
	labels := make([]string, 0, len(allowed))
	for _, p := range allowed {
		if p == current {
			return current, nil
		}
		labels = append(labels, string(p))
	}
	return "", &marketerrors.PhaseViolation{Current: string(current), Allowed: labels}
}
