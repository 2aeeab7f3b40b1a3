package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router wires up.
type Handlers struct {
	Journal   *handlers.JournalHandler
	Colonies  *handlers.ColonyHandler
	Inventory *handlers.InventoryHandler
	Budget    *handlers.BudgetHandler
	Crew      *handlers.CrewHandler
	Archive   *handlers.ArchiveHandler
	Assistant *handlers.AssistantHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")

	api.GET("/journal", h.Journal.List)
	api.POST("/journal", h.Journal.Save)

	api.GET("/colonies", h.Colonies.List)
	api.POST("/colonies", h.Colonies.Create)
	api.PUT("/colonies/:id", h.Colonies.Update)

	api.GET("/inventory", h.Inventory.List)
	api.POST("/inventory", h.Inventory.Create)
	api.GET("/inventory/:id", h.Inventory.Get)
	api.PUT("/inventory/:id", h.Inventory.Update)
	api.GET("/inventory/:id/history", h.Inventory.History)

	api.GET("/budget", h.Budget.Get)
	api.PUT("/budget/limit", h.Budget.SetLimit)
	api.POST("/budget/expenses", h.Budget.AddExpense)
	api.DELETE("/budget/expenses/:id", h.Budget.RemoveExpense)

	api.GET("/crew", h.Crew.List)
	api.POST("/crew", h.Crew.Add)

	api.GET("/archive", h.Archive.ListDocuments)
	api.POST("/archive", h.Archive.AddDocument)
	api.DELETE("/archive/:id", h.Archive.RemoveDocument)

	api.GET("/backup", h.Archive.Export)
	api.POST("/backup/restore", h.Archive.Restore)

	api.POST("/assistant/parse-notes", h.Assistant.ParseNotes)
	api.POST("/sketches", h.Assistant.Sketch)
	api.GET("/bloom", h.Assistant.Bloom)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
