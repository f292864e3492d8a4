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

type MatchingHandler struct {
	cmds commands.MatchingCommands
	q    queries.MatchingQueries
}

func NewMatchingHandler(cmds commands.MatchingCommands, q queries.MatchingQueries) *MatchingHandler {
	return &MatchingHandler{cmds: cmds, q: q}
}

func (h *MatchingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to list matchings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMatchingViews(views))
}

// Get returns the matching with its reconciled snapshots, the balance and the
// expenses that can still be attached.
func (h *MatchingHandler) Get(c *gin.Context) {
	detail, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load matching")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMatchingDetail(detail))
}

func (h *MatchingHandler) Create(c *gin.Context) {
	var req reqdto.CreateMatchingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create matching failed")
		return
	}
	matching, ok := h.load(c, result.MatchingGUID)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, resdto.MatchingEnvelope{Matching: matching})
}

func (h *MatchingHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req reqdto.UpdateMatchingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update matching failed")
		return
	}
	matching, ok := h.load(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.MatchingEnvelope{Matching: matching})
}

func (h *MatchingHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Delete matching failed")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "matching deleted"})
}

func (h *MatchingHandler) Settle(c *gin.Context) {
	id := c.Param("id")
	if err := h.cmds.Settle(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Settle matching failed")
		return
	}
	matching, ok := h.load(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.SettleResponse{Message: "matching settled", Matching: matching})
}

func (h *MatchingHandler) AttachExpense(c *gin.Context) {
	var req reqdto.AttachExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AttachExpense(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Attach expense failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.AttachResponse{Message: "expense attached", MatchingExpenseID: result.Seq})
}

func (h *MatchingHandler) DetachExpense(c *gin.Context) {
	var req reqdto.DetachExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.DetachExpense(c.Request.Context(), c.Param("id"), req.ToCommand()); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Detach expense failed")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "expense detached"})
}

func (h *MatchingHandler) load(c *gin.Context, guid string) (*resdto.MatchingResponse, bool) {
	detail, err := h.q.Get(c.Request.Context(), guid)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load matching", nil)
		return nil, false
	}
	return resdto.FromMatchingDetail(detail).Matching, true
}
