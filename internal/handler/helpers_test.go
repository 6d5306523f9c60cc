package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{service.ErrGameNotFound, http.StatusNotFound},
		{fmt.Errorf("payout: %w", service.ErrSellerNotFound), http.StatusNotFound},
		{service.ErrInvalidPhone, http.StatusUnprocessableEntity},
		{service.ErrNoSellerSelected, http.StatusBadRequest},
		{fmt.Errorf("mailer: %w", infra.ErrBreakerOpen), http.StatusServiceUnavailable},
		{&infra.DepotError{Kind: infra.ErrServerError, Status: 500}, http.StatusBadGateway},
		{&infra.DepotError{Kind: infra.ErrNetworkFailure}, http.StatusBadGateway},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, statusFor(tc.err), tc.err.Error())
	}
}

func bindContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, _ := bindContext(`{"username":"admin","password":"secret"}`)
		var req dto.LoginRequest
		assert.True(t, bindAndValidate(c, &req))
		assert.Equal(t, "admin", req.Username)
	})

	t.Run("missing field", func(t *testing.T) {
		c, w := bindContext(`{"username":"admin"}`)
		var req dto.LoginRequest
		assert.False(t, bindAndValidate(c, &req))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Password")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		c, w := bindContext(`{"username":`)
		var req dto.LoginRequest
		assert.False(t, bindAndValidate(c, &req))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-struct target", func(t *testing.T) {
		c, w := bindContext(`{"username":"admin"}`)
		var req map[string]any
		assert.NotPanics(t, func() { assert.False(t, bindAndValidate(c, &req)) })
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
