package store

import "github.com/pomeroybees/beeyard/internal/domain/models"

// Seed is the initial dataset an application state is built from.
type Seed struct {
	Entries     []models.JournalEntry
	Colonies    []models.ColonyProfile
	Inventory   []models.InventoryItem
	Crew        []models.CrewMember
	Documents   []models.ArchiveDocument
	BudgetLimit float64
	Expenses    []models.BudgetItem
}

// State is the single application state object. It owns every store and is
// created once in main, then passed by reference to the HTTP layer and the
// scheduler. There is no package-level state.
type State struct {
	Journal   *Journal
	Colonies  *Registry
	Inventory *Ledger
	Budget    *Tracker
	Crew      *Directory
	Archive   *Shelf
}

// NewState builds the application state from a seed.
func NewState(seed Seed) *State {
	return &State{
		Journal:   NewJournal(seed.Entries),
		Colonies:  NewRegistry(seed.Colonies),
		Inventory: NewLedger(seed.Inventory),
		Budget:    NewTracker(seed.BudgetLimit, seed.Expenses),
		Crew:      NewDirectory(seed.Crew),
		Archive:   NewShelf(seed.Documents),
	}
}
