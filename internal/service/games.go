package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
	"github.com/lennonhrmn/AWI-Mobile/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrGameNotFound = errors.New("Jeu introuvable dans la liste")

// Buyer used when a game is sold without an invoice.
const anonymousBuyer = "none"

var (
	defaultMaxPrice = decimal.NewFromInt(1000)
)

func matchGame(g model.Game, q string) bool {
	return containsFold(q, g.Name, g.Editor, g.SellerName)
}

func matchGameOrID(g model.Game, q string) bool {
	return containsFold(q, g.Name, g.Editor, g.SellerName, g.ID)
}

func byGameID(id string) func(model.Game) bool {
	return func(g model.Game) bool { return g.ID == id }
}

// transitionGame issues a status-only update for a listed game and, on
// success, removes it from the list and raises notice.
func transitionGame(ctx context.Context, games repository.GameRepository, list *Collection[model.Game], gameID, status, notice string) (*model.Game, error) {
	game, ok := list.Find(byGameID(gameID))
	if !ok {
		return nil, ErrGameNotFound
	}

	list.Begin()
	if err := games.UpdateStatus(ctx, gameID, status); err != nil {
		list.Fail(err)
		return nil, err
	}
	list.Remove(byGameID(gameID))
	list.Succeed(newNotice(titleSuccess, fmt.Sprintf(notice, game.Name)))
	log.Info().Str("game_id", gameID).Str("status", status).Msg("game status changed")
	return &game, nil
}

// ── Inventory ────────────────────────────────────────────────────────────────

// InventoryScreen adds the price ceiling to the shelf list.
type InventoryScreen struct {
	dto.Screen[model.Game]
	MaxPrice         decimal.Decimal `json:"max_price"`
	AbsoluteMaxPrice decimal.Decimal `json:"absolute_max_price"`
}

// InventoryViewModel lists the games on shelf with a text search and a
// maximum price filter.
type InventoryViewModel struct {
	*Collection[model.Game]

	mu       sync.Mutex
	maxPrice decimal.Decimal
}

func NewInventoryViewModel(games repository.GameRepository) *InventoryViewModel {
	return &InventoryViewModel{
		Collection: NewCollection(games.ListShelf, matchGame),
		maxPrice:   defaultMaxPrice,
	}
}

// Fetch reloads the shelf and resets the price ceiling to AbsoluteMaxPrice.
func (vm *InventoryViewModel) Fetch(ctx context.Context) error {
	if err := vm.Collection.Fetch(ctx); err != nil {
		return err
	}
	vm.mu.Lock()
	vm.maxPrice = vm.AbsoluteMaxPrice()
	vm.mu.Unlock()
	return nil
}

// AbsoluteMaxPrice is the highest price rounded up to the next hundred,
// or 1000 when the list is empty.
func (vm *InventoryViewModel) AbsoluteMaxPrice() decimal.Decimal {
	items := vm.Items()
	if len(items) == 0 {
		return defaultMaxPrice
	}
	highest := items[0].Price
	for _, g := range items[1:] {
		if g.Price.GreaterThan(highest) {
			highest = g.Price
		}
	}
	return highest.Div(hundred).Ceil().Mul(hundred)
}

func (vm *InventoryViewModel) SetMaxPrice(p decimal.Decimal) {
	vm.mu.Lock()
	vm.maxPrice = p
	vm.mu.Unlock()
}

// FilteredGames applies the search text and the price ceiling.
func (vm *InventoryViewModel) FilteredGames() []model.Game {
	vm.mu.Lock()
	ceiling := vm.maxPrice
	vm.mu.Unlock()

	out := make([]model.Game, 0)
	for _, g := range vm.Filtered() {
		if g.Price.LessThanOrEqual(ceiling) {
			out = append(out, g)
		}
	}
	return out
}

func (vm *InventoryViewModel) Snapshot() InventoryScreen {
	screen := vm.Collection.Snapshot()
	screen.Items = vm.FilteredGames()
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return InventoryScreen{Screen: screen, MaxPrice: vm.maxPrice, AbsoluteMaxPrice: vm.AbsoluteMaxPrice()}
}

// ── Purchase ─────────────────────────────────────────────────────────────────

// PurchaseViewModel sells shelf games, optionally to a registered buyer, and
// records the transaction.
type PurchaseViewModel struct {
	Games  *Collection[model.Game]
	Buyers *Collection[model.Buyer]

	games        repository.GameRepository
	transactions repository.TransactionRepository
	now          func() time.Time
}

func NewPurchaseViewModel(games repository.GameRepository, buyers repository.BuyerRepository, transactions repository.TransactionRepository) *PurchaseViewModel {
	return &PurchaseViewModel{
		Games:        NewCollection(games.ListShelf, matchGameOrID),
		Buyers:       NewCollection(buyers.List, matchBuyer),
		games:        games,
		transactions: transactions,
		now:          time.Now,
	}
}

// BuyWithoutInvoice sells the game to no one in particular.
func (vm *PurchaseViewModel) BuyWithoutInvoice(ctx context.Context, gameID string) (*model.Game, error) {
	return vm.Buy(ctx, gameID, anonymousBuyer, anonymousBuyer)
}

// Buy marks the game sold, removes it from the shelf list and then records the
// transaction. A failed transaction does not undo the sale; it only surfaces
// an error.
func (vm *PurchaseViewModel) Buy(ctx context.Context, gameID, buyerID, buyerName string) (*model.Game, error) {
	game, ok := vm.Games.Find(byGameID(gameID))
	if !ok {
		return nil, ErrGameNotFound
	}

	vm.Games.Begin()
	sale := dto.SaleUpdate{Status: model.StatusVendu, BuyerID: buyerID, BuyerName: buyerName}
	if err := vm.games.MarkSold(ctx, gameID, sale); err != nil {
		vm.Games.Fail(err)
		return nil, err
	}
	vm.Games.Remove(byGameID(gameID))
	vm.Games.Succeed(newNotice(titleSuccess, fmt.Sprintf("Le jeu '%s' a été vendu avec succès.", game.Name)))

	tx := dto.CreateTransactionRequest{
		GameID:     game.ID,
		GameName:   game.Name,
		BuyerID:    buyerID,
		BuyerName:  buyerName,
		SellerID:   game.SellerID,
		SellerName: game.SellerName,
		Date:       vm.now().UTC().Format(time.RFC3339),
		Price:      game.Price,
		DepositFee: game.DepositFee,
		Commission: game.Commission,
		SessionID:  game.SessionID,
	}
	if err := vm.transactions.Create(ctx, tx); err != nil {
		log.Error().Str("game_id", game.ID).Err(err).Msg("sale recorded but transaction creation failed")
		err = fmt.Errorf("Erreur lors de la création de la transaction: %w", err)
		vm.Games.Fail(err)
		return &game, err
	}
	log.Info().Str("game_id", game.ID).Str("buyer_id", buyerID).Msg("game sold")
	return &game, nil
}

// ── Stock ────────────────────────────────────────────────────────────────────

// StockViewModel lists back-stock games; each can be withdrawn (returned to
// its seller) or put on shelf.
type StockViewModel struct {
	*Collection[model.Game]
	games repository.GameRepository
}

func NewStockViewModel(games repository.GameRepository) *StockViewModel {
	return &StockViewModel{Collection: NewCollection(games.ListStock, matchGame), games: games}
}

func (vm *StockViewModel) Withdraw(ctx context.Context, gameID string) (*model.Game, error) {
	return transitionGame(ctx, vm.games, vm.Collection, gameID, model.StatusWithdrawn,
		"Le jeu '%s' a été retiré des stocks avec succès.")
}

func (vm *StockViewModel) PutOnShelf(ctx context.Context, gameID string) (*model.Game, error) {
	return transitionGame(ctx, vm.games, vm.Collection, gameID, model.StatusRayon,
		"Le jeu '%s' a été mis en rayon avec succès.")
}

// ── Shelf ────────────────────────────────────────────────────────────────────

// ShelfViewModel lists shelf games that can be moved back to stock.
type ShelfViewModel struct {
	*Collection[model.Game]
	games repository.GameRepository
}

func NewShelfViewModel(games repository.GameRepository) *ShelfViewModel {
	return &ShelfViewModel{Collection: NewCollection(games.ListShelf, matchGame), games: games}
}

func (vm *ShelfViewModel) TakeOffShelf(ctx context.Context, gameID string) (*model.Game, error) {
	return transitionGame(ctx, vm.games, vm.Collection, gameID, model.StatusStock,
		"Le jeu '%s' a été retiré du rayon avec succès.")
}
