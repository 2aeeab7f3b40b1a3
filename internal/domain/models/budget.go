package models

import "time"

// ExpenseCategory classifies a budget line item.
type ExpenseCategory string

const (
	ExpenseConsumable ExpenseCategory = "Consumable"
	ExpenseFeed       ExpenseCategory = "Feed"
	ExpenseTreatment  ExpenseCategory = "Treatment"
	ExpenseEquipment  ExpenseCategory = "Equipment"
)

// BudgetItem is a single dated expense against the season budget.
type BudgetItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    ExpenseCategory `json:"category"`
}

// BudgetHealth is the derived view of spending against the season limit.
// UtilizationPercent is clamped to [0,100]; Remaining may go negative, in
// which case OverBudget is set.
type BudgetHealth struct {
	TotalSpent         float64 `json:"totalSpent"`
	Remaining          float64 `json:"remaining"`
	UtilizationPercent float64 `json:"utilizationPercent"`
	OverBudget         bool    `json:"overBudget"`
}
