package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/internal/store"
)

// InventoryHandler exposes the inventory ledger over HTTP. Every mutation
// carries an attributed log entry; required-field validation lives in the
// store so no partial write can slip past a permissive client.
type InventoryHandler struct {
	state  *store.State
	logger *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(state *store.State, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{state: state, logger: logger}
}

type inventoryLogRequest struct {
	Action models.LogAction `json:"action"`
	Actor  string           `json:"actor"`
	Note   string           `json:"note"`
}

type createItemRequest struct {
	Name     string                   `json:"name"`
	Category models.InventoryCategory `json:"category"`
	Quantity int                      `json:"quantity"`
	Status   models.InventoryStatus   `json:"status"`
	Log      inventoryLogRequest      `json:"log"`
}

type updateItemRequest struct {
	Name     *string                   `json:"name"`
	Category *models.InventoryCategory `json:"category"`
	Quantity *int                      `json:"quantity"`
	Status   *models.InventoryStatus   `json:"status"`
	Log      inventoryLogRequest       `json:"log"`
}

// List returns inventory items. The view query selects active stock,
// flagged items, or everything (default).
func (h *InventoryHandler) List(c *gin.Context) {
	switch c.Query("view") {
	case "active":
		c.JSON(http.StatusOK, h.state.Inventory.ListActive())
	case "flagged":
		c.JSON(http.StatusOK, h.state.Inventory.ListFlagged())
	default:
		c.JSON(http.StatusOK, h.state.Inventory.Items())
	}
}

// Get returns a single item with its full history.
func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.state.Inventory.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// History returns just the audit trail of an item.
func (h *InventoryHandler) History(c *gin.Context) {
	item, err := h.state.Inventory.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item.History)
}

// Create inserts a new item whose history starts with the supplied log.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid inventory payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.state.Inventory.CreateItem(
		store.ItemDraft{
			Name:     req.Name,
			Category: req.Category,
			Quantity: req.Quantity,
			Status:   req.Status,
		},
		store.LogDraft{Action: req.Log.Action, Actor: req.Log.Actor, Note: req.Log.Note},
	)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update merges the patch into the item and appends the log entry.
func (h *InventoryHandler) Update(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid inventory payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.state.Inventory.UpdateItem(
		c.Param("id"),
		store.ItemPatch{
			Name:     req.Name,
			Category: req.Category,
			Quantity: req.Quantity,
			Status:   req.Status,
		},
		store.LogDraft{Action: req.Log.Action, Actor: req.Log.Actor, Note: req.Log.Note},
	)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
