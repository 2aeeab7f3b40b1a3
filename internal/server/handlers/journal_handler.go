package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/internal/store"
)

// JournalHandler exposes the field journal over HTTP.
type JournalHandler struct {
	state  *store.State
	logger *zap.Logger
}

// NewJournalHandler constructs the HTTP handler adapter.
func NewJournalHandler(state *store.State, logger *zap.Logger) *JournalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JournalHandler{state: state, logger: logger}
}

// List returns every journal entry, newest first.
func (h *JournalHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Journal.Entries())
}

// Save stores a complete entry: replace in place when the id exists,
// prepend otherwise. Callers supply the whole record; there is no partial
// patch path for journal entries.
func (h *JournalHandler) Save(c *gin.Context) {
	var entry models.JournalEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.logger.Warn("invalid journal payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.state.Journal.SaveEntry(entry)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}
