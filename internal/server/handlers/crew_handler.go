package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/internal/store"
)

// CrewHandler exposes the crew roster over HTTP.
type CrewHandler struct {
	state  *store.State
	logger *zap.Logger
}

// NewCrewHandler constructs the HTTP handler adapter.
func NewCrewHandler(state *store.State, logger *zap.Logger) *CrewHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CrewHandler{state: state, logger: logger}
}

// List returns the roster.
func (h *CrewHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Crew.Members())
}

// Add appends a person to the roster.
func (h *CrewHandler) Add(c *gin.Context) {
	var member models.CrewMember
	if err := c.ShouldBindJSON(&member); err != nil {
		h.logger.Warn("invalid crew payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	added, err := h.state.Crew.AddMember(member)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, added)
}
