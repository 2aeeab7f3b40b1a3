package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/internal/store"
)

// BudgetHandler exposes the fiscal tracker over HTTP.
type BudgetHandler struct {
	state  *store.State
	logger *zap.Logger
}

// NewBudgetHandler constructs the HTTP handler adapter.
func NewBudgetHandler(state *store.State, logger *zap.Logger) *BudgetHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BudgetHandler{state: state, logger: logger}
}

type budgetView struct {
	Limit    float64             `json:"limit"`
	Expenses []models.BudgetItem `json:"expenses"`
	Health   models.BudgetHealth `json:"health"`
}

type setLimitRequest struct {
	Limit float64 `json:"limit"`
}

// Get returns the limit, the ledger (most recent first) and the derived
// health figures.
func (h *BudgetHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, budgetView{
		Limit:    h.state.Budget.Limit(),
		Expenses: h.state.Budget.Expenses(),
		Health:   h.state.Budget.Health(),
	})
}

// SetLimit replaces the season budget cap.
func (h *BudgetHandler) SetLimit(c *gin.Context) {
	var req setLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid limit payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.state.Budget.SetLimit(req.Limit); err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"limit": req.Limit})
}

// AddExpense prepends an expense to the ledger.
func (h *BudgetHandler) AddExpense(c *gin.Context) {
	var item models.BudgetItem
	if err := c.ShouldBindJSON(&item); err != nil {
		h.logger.Warn("invalid expense payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	added, err := h.state.Budget.AddExpense(item)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, added)
}

// RemoveExpense deletes an expense by id. The delete is idempotent, so a
// missing id still answers 204.
func (h *BudgetHandler) RemoveExpense(c *gin.Context) {
	h.state.Budget.RemoveExpense(c.Param("id"))
	c.Status(http.StatusNoContent)
}
