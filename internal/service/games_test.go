package service

import (
	"context"
	"testing"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Inventory ─────────────────────────────────────────────────────────────────

func TestInventory_AbsoluteMaxPriceRoundsUpToHundred(t *testing.T) {
	vm := NewInventoryViewModel(newStubGameRepo(shelfGame("1", "Azul", 30), shelfGame("2", "Brass", 142)))
	require.NoError(t, vm.Fetch(context.Background()))

	assert.True(t, vm.AbsoluteMaxPrice().Equal(dec(200)))
	assert.True(t, vm.Snapshot().MaxPrice.Equal(dec(200)), "fetch resets the ceiling")
}

func TestInventory_AbsoluteMaxPriceDefaultsWhenEmpty(t *testing.T) {
	vm := NewInventoryViewModel(newStubGameRepo())
	require.NoError(t, vm.Fetch(context.Background()))
	assert.True(t, vm.AbsoluteMaxPrice().Equal(dec(1000)))
}

func TestInventory_PriceCeilingAndSearch(t *testing.T) {
	vm := NewInventoryViewModel(newStubGameRepo(
		shelfGame("1", "Azul", 30),
		shelfGame("2", "Azul Duel", 60),
		shelfGame("3", "Dixit", 20),
	))
	require.NoError(t, vm.Fetch(context.Background()))

	vm.SetMaxPrice(dec(50))
	assert.Equal(t, []string{"1", "3"}, gameIDs(vm.FilteredGames()))

	vm.SetSearchText("azul")
	screen := vm.Snapshot()
	assert.Equal(t, []string{"1"}, gameIDs(screen.Items))
	assert.Equal(t, 3, screen.Total)
}

// ── Purchase ──────────────────────────────────────────────────────────────────

func newPurchaseFixture() (*PurchaseViewModel, *stubGameRepo, *stubTransactionRepo) {
	games := newStubGameRepo(shelfGame("7", "Azul", 30), shelfGame("8", "Dixit", 20))
	txs := &stubTransactionRepo{}
	vm := NewPurchaseViewModel(games, &stubBuyerRepo{}, txs)
	vm.now = func() time.Time { return time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC) }
	return vm, games, txs
}

func TestPurchase_BuyRecordsSaleAndTransaction(t *testing.T) {
	vm, games, txs := newPurchaseFixture()
	ctx := context.Background()
	require.NoError(t, vm.Games.Fetch(ctx))

	game, err := vm.Buy(ctx, "7", "B1", "Claire Roux")
	require.NoError(t, err)
	assert.Equal(t, "Azul", game.Name)

	assert.Equal(t, model.StatusVendu, games.sales["7"].Status)
	assert.Equal(t, "B1", games.sales["7"].BuyerID)
	assert.Equal(t, []string{"8"}, gameIDs(vm.Games.Items()))

	require.Len(t, txs.created, 1)
	tx := txs.created[0]
	assert.Equal(t, "7", tx.GameID)
	assert.Equal(t, "Claire Roux", tx.BuyerName)
	assert.Equal(t, "V1", tx.SellerID)
	assert.Equal(t, "2024-03-15T14:00:00Z", tx.Date)
	assert.True(t, tx.Price.Equal(dec(30)))

	n := vm.Games.Notice()
	require.NotNil(t, n)
	assert.Equal(t, "Le jeu 'Azul' a été vendu avec succès.", n.Message)
}

func TestPurchase_WithoutInvoiceUsesAnonymousBuyer(t *testing.T) {
	vm, games, txs := newPurchaseFixture()
	ctx := context.Background()
	require.NoError(t, vm.Games.Fetch(ctx))

	_, err := vm.BuyWithoutInvoice(ctx, "8")
	require.NoError(t, err)
	assert.Equal(t, "none", games.sales["8"].BuyerID)
	assert.Equal(t, "none", games.sales["8"].BuyerName)
	assert.Equal(t, "none", txs.created[0].BuyerID)
}

func TestPurchase_SaleFailureKeepsGame(t *testing.T) {
	vm, games, txs := newPurchaseFixture()
	ctx := context.Background()
	require.NoError(t, vm.Games.Fetch(ctx))
	games.failStatusOn["7"] = true

	_, err := vm.BuyWithoutInvoice(ctx, "7")
	require.Error(t, err)
	assert.Len(t, vm.Games.Items(), 2)
	assert.Empty(t, txs.created)
	assert.NotNil(t, vm.Games.ErrorMessage())
}

func TestPurchase_TransactionFailureDoesNotUndoSale(t *testing.T) {
	vm, games, txs := newPurchaseFixture()
	ctx := context.Background()
	require.NoError(t, vm.Games.Fetch(ctx))
	txs.createErr = errBackend

	_, err := vm.BuyWithoutInvoice(ctx, "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Erreur lors de la création de la transaction")
	assert.Equal(t, model.StatusVendu, games.statusOf["7"])
	assert.Equal(t, []string{"8"}, gameIDs(vm.Games.Items()))
}

func TestPurchase_UnknownGame(t *testing.T) {
	vm, _, _ := newPurchaseFixture()
	_, err := vm.BuyWithoutInvoice(context.Background(), "404")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

// ── Stock & shelf ─────────────────────────────────────────────────────────────

func TestStock_WithdrawAndPutOnShelf(t *testing.T) {
	games := newStubGameRepo(stockGame("1", "Azul", 30), stockGame("2", "Dixit", 20), shelfGame("3", "Brass", 60))
	vm := NewStockViewModel(games)
	ctx := context.Background()
	require.NoError(t, vm.Fetch(ctx))
	assert.Equal(t, []string{"1", "2"}, gameIDs(vm.Items()))

	_, err := vm.Withdraw(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusWithdrawn, games.statusOf["1"])
	assert.Equal(t, "Le jeu 'Azul' a été retiré des stocks avec succès.", vm.Notice().Message)

	_, err = vm.PutOnShelf(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRayon, games.statusOf["2"])
	assert.Empty(t, vm.Items())
}

func TestStock_FailedTransitionKeepsGame(t *testing.T) {
	games := newStubGameRepo(stockGame("1", "Azul", 30))
	games.failStatusOn["1"] = true
	vm := NewStockViewModel(games)
	ctx := context.Background()
	require.NoError(t, vm.Fetch(ctx))

	_, err := vm.Withdraw(ctx, "1")
	require.Error(t, err)
	assert.Len(t, vm.Items(), 1)
	assert.False(t, vm.IsLoading())
}

func TestShelf_TakeOffShelf(t *testing.T) {
	games := newStubGameRepo(shelfGame("3", "Brass", 60))
	vm := NewShelfViewModel(games)
	ctx := context.Background()
	require.NoError(t, vm.Fetch(ctx))

	_, err := vm.TakeOffShelf(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, model.StatusStock, games.statusOf["3"])
	assert.Empty(t, vm.Items())

	_, err = vm.TakeOffShelf(ctx, "3")
	assert.ErrorIs(t, err, ErrGameNotFound)
}
