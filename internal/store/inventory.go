package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pomeroybees/beeyard/internal/domain/models"
)

// ItemDraft carries the caller-supplied fields for a new inventory item.
type ItemDraft struct {
	Name     string
	Category models.InventoryCategory
	Quantity int
	Status   models.InventoryStatus
	Notes    string
}

// ItemPatch describes a partial update to an existing item. Nil fields are
// left untouched.
type ItemPatch struct {
	Name     *string
	Category *models.InventoryCategory
	Quantity *int
	Status   *models.InventoryStatus
}

// LogDraft is the attributed justification that must accompany every
// inventory mutation.
type LogDraft struct {
	Action models.LogAction
	Actor  string
	Note   string
}

// Ledger maintains inventory items and their append-only change histories.
// Items are never deleted; disposal is a status flag.
type Ledger struct {
	mu    sync.RWMutex
	items []models.InventoryItem
	now   func() time.Time
}

// NewLedger builds a ledger seeded with the provided items.
func NewLedger(seed []models.InventoryItem) *Ledger {
	l := &Ledger{now: time.Now}
	l.items = append(l.items, seed...)
	return l
}

// SetClock overrides the ledger clock. Intended for tests.
func (l *Ledger) SetClock(now func() time.Time) { l.now = now }

// CreateItem inserts a new item whose history starts with the supplied log
// entry. Name, actor and note are required; nothing is written when
// validation fails.
func (l *Ledger) CreateItem(draft ItemDraft, log LogDraft) (models.InventoryItem, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return models.InventoryItem{}, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if err := validateLog(log); err != nil {
		return models.InventoryItem{}, err
	}
	if draft.Quantity < 0 {
		return models.InventoryItem{}, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	status := draft.Status
	if status == "" {
		status = models.StatusGood
	}
	action := log.Action
	if action == "" {
		action = models.ActionCreated
	}

	entry := models.InventoryLog{
		ID:     uuid.NewString(),
		Date:   l.now(),
		Action: action,
		Actor:  log.Actor,
		Note:   log.Note,
	}

	item := models.InventoryItem{
		ID:       uuid.NewString(),
		Name:     draft.Name,
		Category: draft.Category,
		Quantity: draft.Quantity,
		Status:   status,
		Notes:    log.Note,
		History:  []models.InventoryLog{entry},
	}

	l.items = append(l.items, item)
	return copyItem(item), nil
}

// UpdateItem merges the patch into the item, replaces its current note with
// the log note and appends exactly one history entry. Returns ErrNotFound if
// no item matches the id.
func (l *Ledger) UpdateItem(id string, patch ItemPatch, log LogDraft) (models.InventoryItem, error) {
	if err := validateLog(log); err != nil {
		return models.InventoryItem{}, err
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return models.InventoryItem{}, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.InventoryItem{}, fmt.Errorf("%w: item name is required", ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.items {
		if l.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.InventoryItem{}, fmt.Errorf("%w: inventory item %s", ErrNotFound, id)
	}

	item := &l.items[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Status != nil {
		item.Status = *patch.Status
	}

	action := log.Action
	if action == "" {
		action = models.ActionUpdated
	}

	item.Notes = log.Note
	item.History = append(item.History, models.InventoryLog{
		ID:     uuid.NewString(),
		Date:   l.now(),
		Action: action,
		Actor:  log.Actor,
		Note:   log.Note,
	})

	return copyItem(*item), nil
}

// Get returns the item with the given id.
func (l *Ledger) Get(id string) (models.InventoryItem, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.items {
		if l.items[i].ID == id {
			return copyItem(l.items[i]), nil
		}
	}
	return models.InventoryItem{}, fmt.Errorf("%w: inventory item %s", ErrNotFound, id)
}

// Items returns every item in store order.
func (l *Ledger) Items() []models.InventoryItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyItems(l.items)
}

// ListActive returns items not flagged for removal, in store order.
func (l *Ledger) ListActive() []models.InventoryItem {
	return l.filter(func(it models.InventoryItem) bool { return it.Status != models.StatusFlagged })
}

// ListFlagged returns items awaiting disposal review, in store order.
func (l *Ledger) ListFlagged() []models.InventoryItem {
	return l.filter(func(it models.InventoryItem) bool { return it.Status == models.StatusFlagged })
}

// Replace swaps the full item set. Used by backup restore.
func (l *Ledger) Replace(items []models.InventoryItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = copyItems(items)
}

func (l *Ledger) filter(keep func(models.InventoryItem) bool) []models.InventoryItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.InventoryItem, 0, len(l.items))
	for i := range l.items {
		if keep(l.items[i]) {
			out = append(out, copyItem(l.items[i]))
		}
	}
	return out
}

func validateLog(log LogDraft) error {
	if strings.TrimSpace(log.Actor) == "" {
		return fmt.Errorf("%w: log actor is required", ErrValidation)
	}
	if strings.TrimSpace(log.Note) == "" {
		return fmt.Errorf("%w: log note is required", ErrValidation)
	}
	return nil
}

func copyItem(item models.InventoryItem) models.InventoryItem {
	dup := item
	dup.History = append([]models.InventoryLog(nil), item.History...)
	return dup
}

func copyItems(items []models.InventoryItem) []models.InventoryItem {
	out := make([]models.InventoryItem, 0, len(items))
	for i := range items {
		out = append(out, copyItem(items[i]))
	}
	return out
}
