package middleware

import (
	"log/slog"
	"net/http"

	"meter-reading-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the body recorded by the httperr abort helpers.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// the latest public error decides the response
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if resp, ok := err.Meta.(httperr.Response); ok && err.IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{
					Status: http.StatusInternalServerError,
					Error:  "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
