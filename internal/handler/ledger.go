package handler

import (
	"net/http"

	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
)

// LedgerHandler serves the transactions and bilan screens.
type LedgerHandler struct{ screens }

func NewLedgerHandler(store *service.WorkspaceStore) *LedgerHandler {
	return &LedgerHandler{screens{store: store}}
}

func (h *LedgerHandler) Transactions(c *gin.Context) {
	vm := h.workspace(c).Transactions
	if err := vm.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	vm.SetSearchText(c.Query("q"))
	c.JSON(http.StatusOK, vm.Snapshot())
}

// Report loads the bilan; scope is general (default) or session.
func (h *LedgerHandler) Report(c *gin.Context) {
	vm := h.workspace(c).Report
	if _, err := vm.Load(c.Request.Context(), c.Query("scope")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm.Snapshot())
}
