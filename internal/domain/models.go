package domain

// Seller owns products inside one battle.
type Seller struct {
	ID        string `db:"id" json:"id"`
	BattleID  string `db:"battle_id" json:"battle_id"`
	AuthToken string `db:"auth_token" json:"auth_token"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

type Buyer struct {
	ID        string `db:"id" json:"id"`
	BattleID  string `db:"battle_id" json:"battle_id"`
	AuthToken string `db:"auth_token" json:"auth_token"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

type Product struct {
	ID                 string       `db:"id" json:"id"`
	BattleID           string       `db:"battle_id" json:"battle_id"`
	SellerID           string       `db:"seller_id" json:"seller_id"`
	Name               string       `db:"name" json:"name"`
	ShortDescription   string       `db:"short_description" json:"short_description"`
	LongDescription    string       `db:"long_description" json:"long_description"`
	PriceInCent        int          `db:"price_in_cent" json:"price_in_cent"`
	Currency           string       `db:"currency" json:"currency"`
	Bestseller         bool         `db:"bestseller" json:"bestseller"`
	Ranking            *int         `db:"ranking" json:"ranking"` // nil until first ranking pass
	TowelVariant       TowelVariant `db:"towel_variant" json:"towel_variant"`
	GSM                int          `db:"gsm" json:"gsm"`
	WidthInches        int          `db:"width_inches" json:"width_inches"`
	LengthInches       int          `db:"length_inches" json:"length_inches"`
	Material           string       `db:"material" json:"material"`
	WholesaleCostCents int          `db:"wholesale_cost_cents" json:"wholesale_cost_cents"`
	CreatedAt          string       `db:"created_at" json:"created_at"`
	UpdatedAt          string       `db:"updated_at" json:"updated_at"`
	ImageIDs           []string     `db:"-" json:"image_ids"`
}

// Image is shared reference data; ProductNumber is the category code ("01".."03").
type Image struct {
	ID            string `db:"id" json:"id"`
	Base64        string `db:"base64" json:"base64,omitempty"`
	Description   string `db:"image_description" json:"image_description"`
	ProductNumber string `db:"product_number" json:"product_number"`
}

// Purchase is append-only. Price and cost are copied from the product at
// purchase time.
type Purchase struct {
	ID                      string `db:"id" json:"id"`
	ProductID               string `db:"product_id" json:"product_id"`
	BuyerID                 string `db:"buyer_id" json:"buyer_id"`
	BattleID                string `db:"battle_id" json:"battle_id"`
	PurchasedAt             int    `db:"purchased_at" json:"purchased_at"` // simulated day
	Round                   int    `db:"round" json:"round"`
	PriceOfPurchase         int    `db:"price_of_purchase" json:"price_of_purchase"`
	WholesaleCostAtPurchase int    `db:"wholesale_cost_at_purchase" json:"wholesale_cost_at_purchase"`
	CreatedAt               string `db:"created_at" json:"created_at"`
}

// Profit may be negative when a seller prices under wholesale.
func (p Purchase) Profit() int { return p.PriceOfPurchase - p.WholesaleCostAtPurchase }

type Metadata struct {
	Key      string `db:"key" json:"key"`
	BattleID string `db:"battle_id" json:"battle_id"`
	Value    string `db:"value" json:"value"`
}

// RankingUpdate assigns one product its rank. A nil Bestseller leaves the
// flag as it is.
type RankingUpdate struct {
	ProductID  string `json:"product_id"`
	Ranking    int    `json:"ranking"`
	Bestseller *bool  `json:"-"`
}
