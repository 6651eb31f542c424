package domain

// Phase gates which writes a battle accepts.
type Phase string

const (
	PhaseSellerManagement Phase = "seller_management"
	PhaseBuyerShopping    Phase = "buyer_shopping"
	PhaseOpen             Phase = "open"

	DefaultPhase = PhaseSellerManagement
)

// ParsePhase reports false for anything that is not a known phase.
func ParsePhase(s string) (Phase, bool) {
	switch p := Phase(s); p {
	case PhaseSellerManagement, PhaseBuyerShopping, PhaseOpen:
		return p, true
	}
	return "", false
}

func (p Phase) String() string { return string(p) }
