package domain

import (
	"encoding/json"
	"strconv"
)

// Metadata keys under which battle state is stored.
const (
	KeyPhase           = "current_phase"
	KeyDay             = "current_day"
	KeyRound           = "current_round"
	KeyRankingRevision = "ranking_revision"
	KeySellerNames     = "seller_names"
	KeyBackendURL      = "backend_url"
)

const (
	DefaultDay   = 0
	DefaultRound = 1
)

// IsReservedKey reports keys owned by typed values. RawValue cannot write them.
func IsReservedKey(key string) bool {
	switch key {
	case KeyPhase, KeyDay, KeyRound, KeyRankingRevision, KeySellerNames, KeyBackendURL:
		return true
	}
	return false
}

// MetaValue is one of the known metadata kinds: PhaseValue, DayValue,
// RoundValue, SellerNames, BattleLink or RawValue.
type MetaValue interface {
	MetaKey() string
	Encode() (string, error)
	metaValue()
}

type PhaseValue struct{ Phase Phase }

func (v PhaseValue) MetaKey() string         { return KeyPhase }
func (v PhaseValue) Encode() (string, error) { return string(v.Phase), nil }
func (PhaseValue) metaValue()                {}

type DayValue struct{ Day int }

func (v DayValue) MetaKey() string         { return KeyDay }
func (v DayValue) Encode() (string, error) { return strconv.Itoa(v.Day), nil }
func (DayValue) metaValue()                {}

type RoundValue struct{ Round int }

func (v RoundValue) MetaKey() string         { return KeyRound }
func (v RoundValue) Encode() (string, error) { return strconv.Itoa(v.Round), nil }
func (RoundValue) metaValue()                {}

// SellerNames maps seller id to display name.
type SellerNames map[string]string

func (v SellerNames) MetaKey() string { return KeySellerNames }

func (v SellerNames) Encode() (string, error) {
	if v == nil {
		v = SellerNames{}
	}
	b, err := json.Marshal(map[string]string(v))
	return string(b), err
}

func (SellerNames) metaValue() {}

// DecodeSellerNames returns an empty map for empty or malformed input.
func DecodeSellerNames(s string) SellerNames {
	out := SellerNames{}
	if s == "" {
		return out
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return SellerNames{}
	}
	return out
}

// BattleLink records where the orchestrator backend for a battle lives.
type BattleLink struct{ BackendURL string }

func (v BattleLink) MetaKey() string         { return KeyBackendURL }
func (v BattleLink) Encode() (string, error) { return v.BackendURL, nil }
func (BattleLink) metaValue()                {}

// RawValue is an arbitrary coordination value under a non-reserved key.
type RawValue struct {
	Key   string
	Value string
}

func (v RawValue) MetaKey() string         { return v.Key }
func (v RawValue) Encode() (string, error) { return v.Value, nil }
func (RawValue) metaValue()                {}
