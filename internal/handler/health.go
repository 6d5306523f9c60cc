package handler

import (
	"net/http"

	"github.com/lennonhrmn/AWI-Mobile/internal/infra"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and the state of the mail relay breaker.
// The backend API is not probed; screens surface its failures themselves.
func Health(mailer *infra.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":   true,
			"mail": mailer.BreakerState().String(),
		})
	}
}
