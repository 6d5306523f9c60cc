package handler

import (
	"net/http"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
)

type DepositHandler struct{ screens }

func NewDepositHandler(store *service.WorkspaceStore) *DepositHandler {
	return &DepositHandler{screens{store: store}}
}

// Screen loads the sessions and renders the deposit form state.
func (h *DepositHandler) Screen(c *gin.Context) {
	vm := h.workspace(c).Deposit
	if err := vm.FetchSessions(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *DepositHandler) SearchSellers(c *gin.Context) {
	sellers, err := h.workspace(c).Deposit.SearchSellers(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": sellers, "total": len(sellers)})
}

func (h *DepositHandler) SelectSeller(c *gin.Context) {
	seller, err := h.workspace(c).Deposit.SelectSeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, seller)
}

// Submit allocates the next game id and creates the game.
func (h *DepositHandler) Submit(c *gin.Context) {
	var req dto.DepositGameRequest
	if !bindAndValidate(c, &req) {
		return
	}
	vm := h.workspace(c).Deposit
	ctx := c.Request.Context()
	if req.SellerID != "" {
		if _, err := vm.SelectSeller(ctx, req.SellerID); err != nil {
			respondError(c, err)
			return
		}
	}
	game, err := vm.Submit(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}
