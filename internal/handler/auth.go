package handler

import (
	"errors"
	"net/http"

	"github.com/lennonhrmn/AWI-Mobile/internal/apierror"
	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/middleware"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, service.ErrAuthNetwork):
		c.JSON(http.StatusBadGateway, apierror.New(err.Error()))
		return
	case err != nil:
		c.JSON(http.StatusUnauthorized, apierror.New(service.ErrInvalidCredentials.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Menu lists the screens available to the caller's role.
func (h *AuthHandler) Menu(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, gin.H{
		"username": claims.Username,
		"role":     claims.Role,
		"sections": service.MenuFor(claims.Role),
	})
}
