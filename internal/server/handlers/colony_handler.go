package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/internal/store"
)

// ColonyHandler exposes the colony registry over HTTP.
type ColonyHandler struct {
	state  *store.State
	logger *zap.Logger
}

// NewColonyHandler constructs the HTTP handler adapter.
func NewColonyHandler(state *store.State, logger *zap.Logger) *ColonyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ColonyHandler{state: state, logger: logger}
}

// List returns every colony profile.
func (h *ColonyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Colonies.Colonies())
}

// Create registers a new colony profile.
func (h *ColonyHandler) Create(c *gin.Context) {
	var colony models.ColonyProfile
	if err := c.ShouldBindJSON(&colony); err != nil {
		h.logger.Warn("invalid colony payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.state.Colonies.AddColony(colony)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update replaces the profile with the id from the path. An unmatched id is
// a 404, never a silent no-op.
func (h *ColonyHandler) Update(c *gin.Context) {
	var colony models.ColonyProfile
	if err := c.ShouldBindJSON(&colony); err != nil {
		h.logger.Warn("invalid colony payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	colony.ID = c.Param("id")
	if err := h.state.Colonies.SaveColony(colony); err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, colony)
}
