package store

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pomeroybees/beeyard/internal/domain/models"
)

// Tracker maintains the season spending limit and the dated expense ledger.
// Expenses are kept most-recent-first.
type Tracker struct {
	mu       sync.RWMutex
	limit    float64
	expenses []models.BudgetItem
	now      func() time.Time
}

// NewTracker builds a tracker with the given limit and seed expenses.
func NewTracker(limit float64, seed []models.BudgetItem) *Tracker {
	t := &Tracker{limit: limit, now: time.Now}
	t.expenses = append(t.expenses, seed...)
	return t
}

// SetClock overrides the tracker clock. Intended for tests.
func (t *Tracker) SetClock(now func() time.Time) { t.now = now }

// SetLimit replaces the season budget cap. Non-finite values are rejected
// because they poison the utilization arithmetic.
func (t *Tracker) SetLimit(limit float64) error {
	if math.IsNaN(limit) || math.IsInf(limit, 0) {
		return fmt.Errorf("%w: limit must be a finite number", ErrValidation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.limit = limit
	return nil
}

// Limit returns the current season budget cap.
func (t *Tracker) Limit() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.limit
}

// AddExpense prepends an expense to the ledger. ID and date are assigned when
// absent; description and a non-negative amount are required.
func (t *Tracker) AddExpense(item models.BudgetItem) (models.BudgetItem, error) {
	if strings.TrimSpace(item.Description) == "" {
		return models.BudgetItem{}, fmt.Errorf("%w: expense description is required", ErrValidation)
	}
	if math.IsNaN(item.Amount) || math.IsInf(item.Amount, 0) || item.Amount < 0 {
		return models.BudgetItem{}, fmt.Errorf("%w: expense amount must be a non-negative number", ErrValidation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Date.IsZero() {
		item.Date = t.now()
	}

	t.expenses = append([]models.BudgetItem{item}, t.expenses...)
	return item, nil
}

// RemoveExpense deletes an expense by id. Removing an id that does not exist
// is a no-op.
func (t *Tracker) RemoveExpense(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.expenses[:0]
	for _, e := range t.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	t.expenses = kept
}

// Expenses returns the ledger, most recent first.
func (t *Tracker) Expenses() []models.BudgetItem {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]models.BudgetItem(nil), t.expenses...)
}

// Health computes total spend, remainder and clamped utilization. Remaining
// may go negative; OverBudget surfaces that condition distinctly.
func (t *Tracker) Health() models.BudgetHealth {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total float64
	for _, e := range t.expenses {
		total += e.Amount
	}

	utilization := 0.0
	switch {
	case t.limit > 0:
		utilization = math.Min(total/t.limit, 1) * 100
	case total > 0:
		utilization = 100
	}

	return models.BudgetHealth{
		TotalSpent:         total,
		Remaining:          t.limit - total,
		UtilizationPercent: utilization,
		OverBudget:         total > t.limit,
	}
}

// Replace swaps the limit and ledger wholesale. Used by backup restore.
func (t *Tracker) Replace(limit float64, expenses []models.BudgetItem) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.limit = limit
	t.expenses = append([]models.BudgetItem(nil), expenses...)
}
