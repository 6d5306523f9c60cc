package handler

import (
	"net/http"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
)

// PeopleHandler serves the buyer and seller screens.
type PeopleHandler struct{ screens }

func NewPeopleHandler(store *service.WorkspaceStore) *PeopleHandler {
	return &PeopleHandler{screens{store: store}}
}

func (h *PeopleHandler) ListBuyers(c *gin.Context) {
	vm := h.workspace(c).Buyers
	if err := vm.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	vm.SetSearchText(c.Query("q"))
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *PeopleHandler) CreateBuyer(c *gin.Context) {
	var req dto.ContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	vm := h.workspace(c).Buyers
	buyer, err := vm.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"buyer": buyer, "notice": vm.Notice()})
}

func (h *PeopleHandler) UpdateBuyer(c *gin.Context) {
	var req dto.ContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	vm := h.workspace(c).Buyers
	buyer, err := vm.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buyer": buyer, "notice": vm.Notice()})
}

func (h *PeopleHandler) DeleteBuyer(c *gin.Context) {
	if err := h.workspace(c).Buyers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PeopleHandler) ListSellers(c *gin.Context) {
	vm := h.workspace(c).Sellers
	if err := vm.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	vm.SetSearchText(c.Query("q"))
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *PeopleHandler) CreateSeller(c *gin.Context) {
	var req dto.ContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	vm := h.workspace(c).Sellers
	seller, err := vm.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"seller": seller, "notice": vm.Notice()})
}
