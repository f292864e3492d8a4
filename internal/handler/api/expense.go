package api

import (
	"net/http"

	reqdto "expense-matching/internal/handler/dto/request"
	resdto "expense-matching/internal/handler/dto/response"
	"expense-matching/internal/handler/httperr"
	"expense-matching/internal/usecase/commands"
	"expense-matching/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	cmds commands.ExpenseCommands
	q    queries.ExpenseQueries
}

func NewExpenseHandler(cmds commands.ExpenseCommands, q queries.ExpenseQueries) *ExpenseHandler {
	return &ExpenseHandler{cmds: cmds, q: q}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	var filter queries.ExpenseFilter
	if userGUID, ok := c.GetQuery("user_guid"); ok && userGUID != "" {
		filter.UserGUID = &userGUID
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, resdto.ExpenseListResponse{Expenses: resdto.FromExpenseViews(views)})
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load expense")
		return
	}
	c.JSON(http.StatusOK, resdto.ExpenseEnvelope{Expense: resdto.FromExpenseView(view)})
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req reqdto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create expense failed")
		return
	}
	view, err := h.q.Get(c.Request.Context(), result.ExpenseGUID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load expense", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.ExpenseEnvelope{Expense: resdto.FromExpenseView(view)})
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req reqdto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid request")
		return
	}
	if err = h.cmds.Update(c.Request.Context(), id, cmd); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update expense failed")
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load expense", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ExpenseEnvelope{Expense: resdto.FromExpenseView(view)})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Delete expense failed")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "expense deleted"})
}
