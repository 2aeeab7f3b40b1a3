package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomeroybees/beeyard/internal/domain/models"
)

func TestBudgetScenario(t *testing.T) {
	tracker := NewTracker(100, nil)

	_, err := tracker.AddExpense(models.BudgetItem{Description: "Sugar", Amount: 45.50, Category: models.ExpenseFeed})
	require.NoError(t, err)

	health := tracker.Health()
	assert.Equal(t, 45.50, health.TotalSpent)
	assert.Equal(t, 54.50, health.Remaining)
	assert.InDelta(t, 45.5, health.UtilizationPercent, 1e-9)
	assert.False(t, health.OverBudget)

	_, err = tracker.AddExpense(models.BudgetItem{Description: "Nuc box", Amount: 70, Category: models.ExpenseEquipment})
	require.NoError(t, err)

	health = tracker.Health()
	assert.Equal(t, 115.50, health.TotalSpent)
	assert.Equal(t, -15.50, health.Remaining)
	assert.Equal(t, 100.0, health.UtilizationPercent) // clamped even when overspent
	assert.True(t, health.OverBudget)
}

func TestAddExpenseAssignsIDAndDatePrepends(t *testing.T) {
	tracker := NewTracker(100, nil)
	tracker.SetClock(testClock())

	first, err := tracker.AddExpense(models.BudgetItem{Description: "Pollen patties", Amount: 12})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, testClock()(), first.Date)

	second, err := tracker.AddExpense(models.BudgetItem{Description: "Syrup jars", Amount: 8})
	require.NoError(t, err)

	expenses := tracker.Expenses()
	require.Len(t, expenses, 2)
	assert.Equal(t, second.ID, expenses[0].ID) // most recent first
	assert.Equal(t, first.ID, expenses[1].ID)
}

func TestAddExpenseValidation(t *testing.T) {
	tracker := NewTracker(100, nil)

	_, err := tracker.AddExpense(models.BudgetItem{Amount: 5})
	require.ErrorIs(t, err, ErrValidation)

	_, err = tracker.AddExpense(models.BudgetItem{Description: "bad", Amount: -1})
	require.ErrorIs(t, err, ErrValidation)

	_, err = tracker.AddExpense(models.BudgetItem{Description: "bad", Amount: math.NaN()})
	require.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, tracker.Expenses())
}

func TestRemoveExpenseIsIdempotent(t *testing.T) {
	tracker := NewTracker(100, nil)
	item, err := tracker.AddExpense(models.BudgetItem{Description: "Sugar", Amount: 45.50})
	require.NoError(t, err)

	tracker.RemoveExpense(item.ID)
	assert.Equal(t, 0.0, tracker.Health().TotalSpent)

	// removing again is a no-op
	tracker.RemoveExpense(item.ID)
	tracker.RemoveExpense("never-existed")
	assert.Empty(t, tracker.Expenses())
}

func TestRemoveExpenseDecreasesTotalByExactAmount(t *testing.T) {
	tracker := NewTracker(200, nil)
	a, _ := tracker.AddExpense(models.BudgetItem{Description: "a", Amount: 45.50})
	_, _ = tracker.AddExpense(models.BudgetItem{Description: "b", Amount: 12})

	before := tracker.Health().TotalSpent
	tracker.RemoveExpense(a.ID)
	assert.Equal(t, before-45.50, tracker.Health().TotalSpent)
}

func TestSetLimit(t *testing.T) {
	tracker := NewTracker(100, nil)

	require.NoError(t, tracker.SetLimit(250))
	assert.Equal(t, 250.0, tracker.Limit())

	require.ErrorIs(t, tracker.SetLimit(math.NaN()), ErrValidation)
	require.ErrorIs(t, tracker.SetLimit(math.Inf(1)), ErrValidation)
	assert.Equal(t, 250.0, tracker.Limit())
}

func TestHealthWithZeroLimit(t *testing.T) {
	tracker := NewTracker(0, nil)
	assert.Equal(t, 0.0, tracker.Health().UtilizationPercent)

	_, err := tracker.AddExpense(models.BudgetItem{Description: "anything", Amount: 1})
	require.NoError(t, err)

	health := tracker.Health()
	assert.Equal(t, 100.0, health.UtilizationPercent)
	assert.True(t, health.OverBudget)
}
