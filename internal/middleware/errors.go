package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acceso-plantas/pila-api/internal/domain/dto"
	"github.com/acceso-plantas/pila-api/internal/logger"
)

// ErrorHandler drains errors attached to the Gin context after the handler
// chain ran. If a handler recorded an error but wrote no response, a
// standardized 500 body is emitted.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request error")

	if c.Writer.Written() {
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError records err on the context and aborts the request with a
// standardized JSON error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
