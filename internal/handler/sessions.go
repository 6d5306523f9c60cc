package handler

import (
	"net/http"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionsHandler struct{ screens }

func NewSessionsHandler(store *service.WorkspaceStore) *SessionsHandler {
	return &SessionsHandler{screens{store: store}}
}

func (h *SessionsHandler) List(c *gin.Context) {
	vm := h.workspace(c).Sessions
	if err := vm.Fetch(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *SessionsHandler) Create(c *gin.Context) {
	var form dto.SessionForm
	if !bindAndValidate(c, &form) {
		return
	}
	vm := h.workspace(c).Sessions
	if err := vm.Add(c.Request.Context(), form); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vm.Snapshot())
}

// Update addresses the session by its backend document id.
func (h *SessionsHandler) Update(c *gin.Context) {
	var form dto.SessionForm
	if !bindAndValidate(c, &form) {
		return
	}
	vm := h.workspace(c).Sessions
	if err := vm.Update(c.Request.Context(), c.Param("id"), form); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm.Snapshot())
}

func (h *SessionsHandler) Delete(c *gin.Context) {
	vm := h.workspace(c).Sessions
	if err := vm.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vm.Snapshot())
}
