package handlers

import (
	"math/rand"

	"marketplace/internal/config"
	"marketplace/internal/repos"
	"marketplace/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AdminKey string
	Auth     *services.AuthService

	ParticipantHandler *ParticipantHandler
	ImageHandler       *ImageHandler
	AdminHandler       *AdminHandler
	ProductHandler     *ProductHandler
	SearchHandler      *SearchHandler
	PurchaseHandler    *PurchaseHandler
	RankingHandler     *RankingHandler
	LeaderboardHandler *LeaderboardHandler
}

// NewDeps wires stores, services and handlers over one database. A nil rnd
// seeds the ranking shuffle from the clock.
func NewDeps(db *sqlx.DB, cfg config.Config, rnd *rand.Rand) *Deps {
	sellerRepo := repos.NewSellerRepo(db)
	buyerRepo := repos.NewBuyerRepo(db)
	prodRepo := repos.NewProductRepo(db)
	imageRepo := repos.NewImageRepo(db)
	purchaseRepo := repos.NewPurchaseRepo(db)
	metaRepo := repos.NewMetadataRepo(db)

	phaseSvc := services.NewPhaseService(metaRepo)
	clockSvc := services.NewClockService(metaRepo)
	metaSvc := services.NewMetadataService(metaRepo)
	authSvc := services.NewAuthService(sellerRepo, buyerRepo)
	catalogSvc := services.NewCatalogService(prodRepo, phaseSvc, services.NewImageValidator(imageRepo))
	purchaseSvc := services.NewPurchaseService(prodRepo, purchaseRepo, sellerRepo, phaseSvc, clockSvc)
	rankingSvc := services.NewRankingService(prodRepo, purchaseRepo, metaRepo, clockSvc, rnd)
	boardSvc := services.NewLeaderboardService(sellerRepo, purchaseRepo, clockSvc, metaSvc)

	return &Deps{
		AdminKey: cfg.AdminAPIKey,
		Auth:     authSvc,

		ParticipantHandler: &ParticipantHandler{Auth: authSvc},
		ImageHandler:       &ImageHandler{Images: imageRepo},
		AdminHandler:       &AdminHandler{Phases: phaseSvc, Clock: clockSvc, Metadata: metaSvc},
		ProductHandler:     &ProductHandler{Catalog: catalogSvc},
		SearchHandler:      &SearchHandler{Catalog: catalogSvc},
		PurchaseHandler:    &PurchaseHandler{Purchases: purchaseSvc, Leaderboard: boardSvc},
		RankingHandler:     &RankingHandler{Rankings: rankingSvc},
		LeaderboardHandler: &LeaderboardHandler{Leaderboard: boardSvc},
	}
}
