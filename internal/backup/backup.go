// Package backup serializes the full application state into a single JSON
// document the keeper can download and keep locally, and restores state from
// such a document with field-for-field fidelity.
package backup

import (
	"time"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/internal/store"
)

// Fiscal is the budget section of a backup document.
type Fiscal struct {
	Limit    float64             `json:"limit"`
	Expenses []models.BudgetItem `json:"expenses"`
}

// Document is the full-backup payload. Field names and nesting are fixed;
// they are what round-trips through exported files.
type Document struct {
	Timestamp time.Time              `json:"timestamp"`
	Budget    Fiscal                 `json:"budget"`
	Journal   []models.JournalEntry  `json:"journal"`
	Colonies  []models.ColonyProfile `json:"colonies"`
	Inventory []models.InventoryItem `json:"inventory"`
}

// Build snapshots the state into a backup document stamped with the given
// time.
func Build(state *store.State, now time.Time) Document {
	return Document{
		Timestamp: now,
		Budget: Fiscal{
			Limit:    state.Budget.Limit(),
			Expenses: state.Budget.Expenses(),
		},
		Journal:   state.Journal.Entries(),
		Colonies:  state.Colonies.Colonies(),
		Inventory: state.Inventory.Items(),
	}
}

// Restore replaces the journal, colonies, inventory and fiscal ledger with
// the document contents. The crew roster and document shelf are not part of
// the backup format and are left untouched.
func Restore(state *store.State, doc Document) {
	state.Budget.Replace(doc.Budget.Limit, doc.Budget.Expenses)
	state.Journal.Replace(doc.Journal)
	state.Colonies.Replace(doc.Colonies)
	state.Inventory.Replace(doc.Inventory)
}
