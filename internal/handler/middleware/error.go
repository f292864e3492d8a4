package middleware

import (
	"log/slog"
	"net/http"

	"expense-matching/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes a response for handlers that recorded an error with
// c.Error but returned without answering. Public errors carry their response
// in Meta; private ones are mapped through the error taxonomy.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypePublic) {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := httperr.StatusOf(last.Err)
		resp := httperr.Response{Status: status}
		if status == http.StatusInternalServerError {
			resp.Error.Message = "Internal server error"
		} else {
			resp.Error.Message = last.Err.Error()
		}
		c.JSON(status, resp)
	}
}

// NotFound answers unknown routes in the same envelope as handler errors.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusNotFound}
		resp.Error.Message = "route not found"
		c.AbortWithStatusJSON(http.StatusNotFound, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
