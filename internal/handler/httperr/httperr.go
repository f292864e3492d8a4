package httperr

import (
	"log/slog"
	"net/http"

	"expense-matching/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps the error taxonomy onto HTTP. Duplicate attach and double
// settle are reported as 400 like the other client errors.
func StatusOf(err error) int {
	switch errs.Kind(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict, errs.ErrInvalidState, errs.ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithUseCaseError reports classified errors with their own message and
// hides the rest behind fallback.
func AbortWithUseCaseError(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error(fallback,
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLines))
		AbortWithError(c, status, err, fallback, nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), nil)
}
