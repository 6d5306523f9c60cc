package handler

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
)

// PayoutsHandler serves the seller reimbursement screen.
type PayoutsHandler struct {
	screens
	statements *service.StatementService
}

func NewPayoutsHandler(store *service.WorkspaceStore, statements *service.StatementService) *PayoutsHandler {
	return &PayoutsHandler{screens: screens{store: store}, statements: statements}
}

func (h *PayoutsHandler) List(c *gin.Context) {
	vm := h.workspace(c).Payout
	if err := vm.FetchSoldGames(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	vm.SetSearchText(c.Query("q"))
	c.JSON(http.StatusOK, vm.Snapshot())
}

// Initiate selects the seller for confirmation and returns the summary.
func (h *PayoutsHandler) Initiate(c *gin.Context) {
	vm := h.workspace(c).Payout
	if _, err := h.summary(c.Request.Context(), vm, c.Param("sellerId")); err != nil {
		respondError(c, err)
		return
	}
	summary, err := vm.Initiate(c.Param("sellerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Settle marks every sold game of the seller as paid.
func (h *PayoutsHandler) Settle(c *gin.Context) {
	vm := h.workspace(c).Payout
	sellerID := c.Param("sellerId")
	if _, err := h.summary(c.Request.Context(), vm, sellerID); err != nil {
		respondError(c, err)
		return
	}
	result, err := vm.Settle(c.Request.Context(), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettlementResponse{
		SellerID:     sellerID,
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
		Notice:       vm.Notice(),
	})
}

// Statement downloads the seller's payout statement as a PDF.
func (h *PayoutsHandler) Statement(c *gin.Context) {
	vm := h.workspace(c).Payout
	summary, err := h.summary(c.Request.Context(), vm, c.Param("sellerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	path, err := h.statements.Render(summary)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// EmailStatement mails the statement to the seller's address.
func (h *PayoutsHandler) EmailStatement(c *gin.Context) {
	ws := h.workspace(c)
	ctx := c.Request.Context()
	sellerID := c.Param("sellerId")

	summary, err := h.summary(ctx, ws.Payout, sellerID)
	if err != nil {
		respondError(c, err)
		return
	}
	bySellerID := func(s model.Seller) bool { return s.ID == sellerID }
	seller, ok := ws.Sellers.Find(bySellerID)
	if !ok {
		if err := ws.Sellers.Fetch(ctx); err != nil {
			respondError(c, err)
			return
		}
		if seller, ok = ws.Sellers.Find(bySellerID); !ok {
			respondError(c, service.ErrSellerUnknown)
			return
		}
	}
	if err := h.statements.Mail(summary, seller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seller_id": sellerID, "sent_to": seller.Email})
}

// summary returns the known summary of sellerID, loading the sold games
// once when it is not known yet.
func (h *PayoutsHandler) summary(ctx context.Context, vm *service.PayoutViewModel, sellerID string) (model.SellerSummary, error) {
	if s, ok := vm.Summary(sellerID); ok {
		return s, nil
	}
	if err := vm.FetchSoldGames(ctx); err != nil {
		return model.SellerSummary{}, err
	}
	if s, ok := vm.Summary(sellerID); ok {
		return s, nil
	}
	return model.SellerSummary{}, service.ErrSellerNotFound
}
