package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/backup"
	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/internal/store"
)

// ArchiveHandler exposes the reference library and the full-backup
// export/restore flow over HTTP.
type ArchiveHandler struct {
	state  *store.State
	logger *zap.Logger
	now    func() time.Time
}

// NewArchiveHandler constructs the HTTP handler adapter.
func NewArchiveHandler(state *store.State, logger *zap.Logger) *ArchiveHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArchiveHandler{state: state, logger: logger, now: time.Now}
}

// ListDocuments returns the reference library, newest first.
func (h *ArchiveHandler) ListDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Archive.Documents())
}

// AddDocument files a document in the library.
func (h *ArchiveHandler) AddDocument(c *gin.Context) {
	var doc models.ArchiveDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		h.logger.Warn("invalid document payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	added, err := h.state.Archive.AddDocument(doc)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, added)
}

// RemoveDocument deletes a document by id; idempotent.
func (h *ArchiveHandler) RemoveDocument(c *gin.Context) {
	h.state.Archive.RemoveDocument(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Export serializes the full application state into the downloadable backup
// document.
func (h *ArchiveHandler) Export(c *gin.Context) {
	doc := backup.Build(h.state, h.now())

	filename := fmt.Sprintf("beeyard_backup_%s.json", doc.Timestamp.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

// Restore replaces the journal, colonies, inventory and fiscal ledger with
// the uploaded backup document.
func (h *ArchiveHandler) Restore(c *gin.Context) {
	var doc backup.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		h.logger.Warn("invalid backup payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid backup document"})
		return
	}

	backup.Restore(h.state, doc)
	h.logger.Info("state restored from backup",
		zap.Time("backup_timestamp", doc.Timestamp),
		zap.Int("entries", len(doc.Journal)),
		zap.Int("colonies", len(doc.Colonies)),
		zap.Int("inventory", len(doc.Inventory)))

	c.Status(http.StatusNoContent)
}
