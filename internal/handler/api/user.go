package api

import (
	"net/http"

	resdto "expense-matching/internal/handler/dto/response"
	"expense-matching/internal/handler/httperr"
	"expense-matching/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	q queries.UserQueries
}

func NewUserHandler(q queries.UserQueries) *UserHandler {
	return &UserHandler{q: q}
}

func (h *UserHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to list users")
		return
	}
	res, err := resdto.FromUserViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list users", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
