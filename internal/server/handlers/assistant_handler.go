package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/service/assistant"
	"github.com/pomeroybees/beeyard/internal/service/sketch"
)

// AssistantHandler exposes the two AI collaborators: the field-note parser
// and the botanical sketch panel. Both are optional and best-effort; their
// failures never block manual entry.
type AssistantHandler struct {
	assistantSvc *assistant.Service
	sketchSvc    *sketch.Service
	logger       *zap.Logger
	now          func() time.Time
}

// NewAssistantHandler constructs the HTTP handler adapter.
func NewAssistantHandler(assistantSvc *assistant.Service, sketchSvc *sketch.Service, logger *zap.Logger) *AssistantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantHandler{assistantSvc: assistantSvc, sketchSvc: sketchSvc, logger: logger, now: time.Now}
}

type parseNotesRequest struct {
	RawNotes string `json:"rawNotes" binding:"required"`
	Author   string `json:"author" binding:"required"`
}

type sketchRequest struct {
	ID      string `json:"id" binding:"required"`
	Subject string `json:"subject" binding:"required"`
}

// ParseNotes turns rough field notes into a draft journal entry. The draft
// is returned for review, never saved here; on failure the client falls back
// to manual entry with the raw text intact.
func (h *AssistantHandler) ParseNotes(c *gin.Context) {
	var req parseNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid parse-notes payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.assistantSvc.DraftFromNotes(c.Request.Context(), req.RawNotes, req.Author)
	if err != nil {
		if errors.Is(err, assistant.ErrDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "note assistant is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to parse notes"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// Sketch returns the cached or freshly generated sketch for an id. A failed
// generation answers with an empty url so the client renders a placeholder.
func (h *AssistantHandler) Sketch(c *gin.Context) {
	var req sketchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid sketch payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	url, err := h.sketchSvc.Sketch(c.Request.Context(), req.ID, req.Subject)
	if err != nil {
		if errors.Is(err, sketch.ErrDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sketch generator is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "sketch generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID, "url": url})
}

// Bloom returns the plants in bloom for the current month with any cached
// sketches attached.
func (h *AssistantHandler) Bloom(c *gin.Context) {
	c.JSON(http.StatusOK, h.sketchSvc.InBloom(h.now().Month()))
}
