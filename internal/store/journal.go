package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pomeroybees/beeyard/internal/domain/models"
)

// Journal maintains the dated field-observation entries, newest first.
// Entries are replaced wholesale on save and never deleted.
type Journal struct {
	mu      sync.RWMutex
	entries []models.JournalEntry
	now     func() time.Time
}

// NewJournal builds a journal seeded with the provided entries.
func NewJournal(seed []models.JournalEntry) *Journal {
	j := &Journal{now: time.Now}
	j.entries = append(j.entries, seed...)
	return j
}

// SetClock overrides the journal clock. Intended for tests.
func (j *Journal) SetClock(now func() time.Time) { j.now = now }

// SaveEntry replaces an existing entry in place when the id matches,
// preserving its position; otherwise the entry is prepended. ID and date are
// assigned when absent.
func (j *Journal) SaveEntry(entry models.JournalEntry) (models.JournalEntry, error) {
	if strings.TrimSpace(entry.Author) == "" {
		return models.JournalEntry{}, fmt.Errorf("%w: entry author is required", ErrValidation)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Date.IsZero() {
		entry.Date = j.now()
	}

	for i := range j.entries {
		if j.entries[i].ID == entry.ID {
			j.entries[i] = entry
			return entry, nil
		}
	}

	j.entries = append([]models.JournalEntry{entry}, j.entries...)
	return entry, nil
}

// Entries returns the journal, newest first.
func (j *Journal) Entries() []models.JournalEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return append([]models.JournalEntry(nil), j.entries...)
}

// Get returns the entry with the given id.
func (j *Journal) Get(id string) (models.JournalEntry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	for i := range j.entries {
		if j.entries[i].ID == id {
			return j.entries[i], nil
		}
	}
	return models.JournalEntry{}, fmt.Errorf("%w: journal entry %s", ErrNotFound, id)
}

// Replace swaps the full entry list. Used by backup restore.
func (j *Journal) Replace(entries []models.JournalEntry) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append([]models.JournalEntry(nil), entries...)
}
