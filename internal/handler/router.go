package handler

import (
	"net/http"

	"expense-matching/internal/handler/api"
	"expense-matching/internal/handler/middleware"
	"expense-matching/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	User     *api.UserHandler
	Expense  *api.ExpenseHandler
	Matching *api.MatchingHandler
}

// NewRouter mounts middleware and routes. A nil gatherer leaves /metrics unmounted.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, h Handlers, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)

	if gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.User.List},
		})

		addRoutes(apiGroup.Group("/expenses"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Expense.List},
			{Method: http.MethodPost, Path: "", Handler: h.Expense.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Expense.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Expense.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Expense.Delete},
		})

		addRoutes(apiGroup.Group("/matchings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Matching.List},
			{Method: http.MethodPost, Path: "", Handler: h.Matching.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Matching.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Matching.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Matching.Delete},
			{Method: http.MethodPost, Path: "/:id/settle", Handler: h.Matching.Settle},
			{Method: http.MethodPost, Path: "/:id/expenses", Handler: h.Matching.AttachExpense},
			{Method: http.MethodDelete, Path: "/:id/expenses", Handler: h.Matching.DetachExpense},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
