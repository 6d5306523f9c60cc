package router

import (
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/config"
	"github.com/lennonhrmn/AWI-Mobile/internal/handler"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/middleware"
	"github.com/lennonhrmn/AWI-Mobile/internal/repository"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
)

// Deps are the long-lived collaborators built by the composition root.
type Deps struct {
	API        *infra.DepotClient
	Mailer     *infra.Mailer
	Workspaces *service.WorkspaceStore
}

// Repositories builds every backend repository over api.
func Repositories(api *infra.DepotClient) service.Repositories {
	return service.Repositories{
		Games:        repository.NewGameRepository(api),
		Sellers:      repository.NewSellerRepository(api),
		Buyers:       repository.NewBuyerRepository(api),
		Sessions:     repository.NewSessionRepository(api),
		Transactions: repository.NewTransactionRepository(api),
		Reports:      repository.NewReportRepository(api),
	}
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Workspace view-models ← Repository ← DepotClient
func New(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(600, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(repository.NewAuthRepository(deps.API), deps.Workspaces, cfg)
	statements := service.NewStatementService(cfg.ShopName, cfg.PDFStoragePath, deps.Mailer)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	gamesH := handler.NewGamesHandler(deps.Workspaces)
	depositH := handler.NewDepositHandler(deps.Workspaces)
	peopleH := handler.NewPeopleHandler(deps.Workspaces)
	sessionsH := handler.NewSessionsHandler(deps.Workspaces)
	ledgerH := handler.NewLedgerHandler(deps.Workspaces)
	payoutsH := handler.NewPayoutsHandler(deps.Workspaces, statements)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(deps.Mailer))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		v1.GET("/menu", authH.Menu)

		v1.GET("/inventory", gamesH.Inventory)

		purchase := v1.Group("/purchase")
		{
			purchase.GET("/games", gamesH.PurchaseGames)
			purchase.GET("/buyers", gamesH.PurchaseBuyers)
			purchase.POST("/games/:id", gamesH.Buy)
		}

		stock := v1.Group("/stock")
		{
			stock.GET("", gamesH.Stock)
			stock.POST("/:id/withdraw", gamesH.Withdraw)
			stock.POST("/:id/shelve", gamesH.Shelve)
		}

		shelf := v1.Group("/shelf")
		{
			shelf.GET("", gamesH.Shelf)
			shelf.POST("/:id/unshelve", gamesH.Unshelve)
		}

		deposit := v1.Group("/deposit")
		{
			deposit.GET("", depositH.Screen)
			deposit.GET("/sellers", depositH.SearchSellers)
			deposit.PUT("/seller/:id", depositH.SelectSeller)
			deposit.POST("", depositH.Submit)
		}

		buyers := v1.Group("/buyers")
		{
			buyers.GET("", peopleH.ListBuyers)
			buyers.POST("", peopleH.CreateBuyer)
			buyers.PUT("/:id", peopleH.UpdateBuyer)
			buyers.DELETE("/:id", peopleH.DeleteBuyer)
		}

		sellers := v1.Group("/sellers")
		{
			sellers.GET("", peopleH.ListSellers)
			sellers.POST("", peopleH.CreateSeller)
		}

		// Admin screens
		admin := v1.Group("", middleware.RequireRole(service.RoleAdmin))
		{
			admin.GET("/sessions", sessionsH.List)
			admin.POST("/sessions", sessionsH.Create)
			admin.PUT("/sessions/:id", sessionsH.Update)
			admin.DELETE("/sessions/:id", sessionsH.Delete)

			admin.GET("/transactions", ledgerH.Transactions)
			admin.GET("/report", ledgerH.Report)

			admin.GET("/payouts", payoutsH.List)
			admin.POST("/payouts/:sellerId/initiate", payoutsH.Initiate)
			admin.POST("/payouts/:sellerId/settle", payoutsH.Settle)
			admin.GET("/payouts/:sellerId/statement", payoutsH.Statement)
			admin.POST("/payouts/:sellerId/statement/email", payoutsH.EmailStatement)
		}
	}

	return r
}
