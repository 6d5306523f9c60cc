package handler

import (
	"context"
	"net/http"

	"github.com/lennonhrmn/AWI-Mobile/internal/apierror"
	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GamesHandler serves the inventory, purchase, stock and shelf screens.
type GamesHandler struct{ screens }

func NewGamesHandler(store *service.WorkspaceStore) *GamesHandler {
	return &GamesHandler{screens{store: store}}
}

// Inventory renders the shelf filtered by q and an optional max_price.
func (h *GamesHandler) Inventory(c *gin.Context) {
	vm := h.workspace(c).Inventory
	if err := vm.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	vm.SetSearchText(c.Query("q"))
	if raw := c.Query("max_price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil || p.IsNegative() {
			c.JSON(http.StatusBadRequest, apierror.New("Prix maximum invalide"))
			return
		}
		vm.SetMaxPrice(p)
	}
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *GamesHandler) PurchaseGames(c *gin.Context) {
	games := h.workspace(c).Purchase.Games
	if err := games.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	games.SetSearchText(c.Query("q"))
	c.JSON(http.StatusOK, games.Snapshot())
}

func (h *GamesHandler) PurchaseBuyers(c *gin.Context) {
	buyers := h.workspace(c).Purchase.Buyers
	if err := buyers.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	buyers.SetSearchText(c.Query("q"))
	c.JSON(http.StatusOK, buyers.Snapshot())
}

// Buy sells a shelf game. Without a body the sale has no invoice.
func (h *GamesHandler) Buy(c *gin.Context) {
	vm := h.workspace(c).Purchase
	ctx := c.Request.Context()
	gameID := c.Param("id")

	if _, ok := vm.Games.Find(func(g model.Game) bool { return g.ID == gameID }); !ok {
		if err := vm.Games.Fetch(ctx); err != nil {
			respondError(c, err)
			return
		}
	}

	var (
		game *model.Game
		err  error
	)
	if c.Request.ContentLength > 0 {
		var req dto.BuyRequest
		if !bindAndValidate(c, &req) {
			return
		}
		if req.BuyerID != "" {
			game, err = vm.Buy(ctx, gameID, req.BuyerID, req.BuyerName)
		} else {
			game, err = vm.BuyWithoutInvoice(ctx, gameID)
		}
	} else {
		game, err = vm.BuyWithoutInvoice(ctx, gameID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": game, "notice": vm.Games.Notice()})
}

func (h *GamesHandler) Stock(c *gin.Context) {
	vm := h.workspace(c).Stock
	if err := vm.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	vm.SetSearchText(c.Query("q"))
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *GamesHandler) Withdraw(c *gin.Context) {
	vm := h.workspace(c).Stock
	if !h.ensureListed(c, vm.Collection.Find, vm.Fetch) {
		return
	}
	if _, err := vm.Withdraw(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *GamesHandler) Shelve(c *gin.Context) {
	vm := h.workspace(c).Stock
	if !h.ensureListed(c, vm.Collection.Find, vm.Fetch) {
		return
	}
	if _, err := vm.PutOnShelf(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *GamesHandler) Shelf(c *gin.Context) {
	vm := h.workspace(c).Shelf
	if err := vm.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	vm.SetSearchText(c.Query("q"))
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *GamesHandler) Unshelve(c *gin.Context) {
	vm := h.workspace(c).Shelf
	if !h.ensureListed(c, vm.Collection.Find, vm.Fetch) {
		return
	}
	if _, err := vm.TakeOffShelf(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm.Snapshot())
}

// ensureListed loads the list when the game of the :id param is not in it
// yet, so an action can be issued without opening the screen first.
func (h *GamesHandler) ensureListed(c *gin.Context, find func(func(model.Game) bool) (model.Game, bool), fetch func(ctx context.Context) error) bool {
	id := c.Param("id")
	if _, ok := find(func(g model.Game) bool { return g.ID == id }); ok {
		return true
	}
	if err := fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return false
	}
	return true
}
