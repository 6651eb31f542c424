package domain

type TowelVariant string

const (
	VariantBudget  TowelVariant = "budget"
	VariantMidTier TowelVariant = "mid_tier"
	VariantPremium TowelVariant = "premium"
)

// TowelSpec is the fixed physical spec and wholesale cost of a variant.
type TowelSpec struct {
	Variant            TowelVariant
	Category           string // image product_number the variant must use
	GSM                int
	WidthInches        int
	LengthInches       int
	Material           string
	WholesaleCostCents int
}

var towelSpecs = map[TowelVariant]TowelSpec{
	VariantBudget: {
		Variant: VariantBudget, Category: "01",
		GSM: 500, WidthInches: 27, LengthInches: 54,
		Material: "Standard Cotton", WholesaleCostCents: 800,
	},
	VariantMidTier: {
		Variant: VariantMidTier, Category: "02",
		GSM: 550, WidthInches: 27, LengthInches: 54,
		Material: "Premium Cotton", WholesaleCostCents: 1200,
	},
	VariantPremium: {
		Variant: VariantPremium, Category: "03",
		GSM: 600, WidthInches: 27, LengthInches: 59,
		Material: "Premium Cotton", WholesaleCostCents: 1500,
	},
}

// SpecFor returns the spec of a known variant.
func SpecFor(v TowelVariant) (TowelSpec, bool) {
	s, ok := towelSpecs[v]
	return s, ok
}

// Variants lists the variants in tier order.
func Variants() []TowelVariant {
	return []TowelVariant{VariantBudget, VariantMidTier, VariantPremium}
}

// Apply copies the variant's spec fields onto p.
func (s TowelSpec) Apply(p *Product) {
	p.TowelVariant = s.Variant
	p.GSM = s.GSM
	p.WidthInches = s.WidthInches
	p.LengthInches = s.LengthInches
	p.Material = s.Material
	p.WholesaleCostCents = s.WholesaleCostCents
}
