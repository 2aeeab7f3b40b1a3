package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomeroybees/beeyard/internal/domain/models"
)

func TestSaveEntryPrependsNewEntries(t *testing.T) {
	journal := NewJournal(nil)
	journal.SetClock(testClock())

	first, err := journal.SaveEntry(models.JournalEntry{Author: "Justin S.", Narrative: "quick peek"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, testClock()(), first.Date)

	second, err := journal.SaveEntry(models.JournalEntry{Author: "Mark C.", Narrative: "full inspection"})
	require.NoError(t, err)

	entries := journal.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestSaveEntryReplacesInPlace(t *testing.T) {
	journal := NewJournal([]models.JournalEntry{
		{ID: "e3", Author: "A", Narrative: "newest"},
		{ID: "e2", Author: "B", Narrative: "middle"},
		{ID: "e1", Author: "C", Narrative: "oldest"},
	})

	edited := models.JournalEntry{
		ID:        "e2",
		Author:    "B",
		Narrative: "middle, corrected",
		Date:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := journal.SaveEntry(edited)
	require.NoError(t, err)

	entries := journal.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "e3", entries[0].ID)
	assert.Equal(t, "middle, corrected", entries[1].Narrative)
	assert.Equal(t, "e1", entries[2].ID)
}

func TestSaveEntryRequiresAuthor(t *testing.T) {
	journal := NewJournal(nil)
	_, err := journal.SaveEntry(models.JournalEntry{Narrative: "anonymous"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, journal.Entries())
}

func TestJournalGet(t *testing.T) {
	journal := NewJournal([]models.JournalEntry{{ID: "e1", Author: "A"}})

	entry, err := journal.Get("e1")
	require.NoError(t, err)
	assert.Equal(t, "A", entry.Author)

	_, err = journal.Get("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestJournalReplace(t *testing.T) {
	journal := NewJournal([]models.JournalEntry{{ID: "old", Author: "A"}})
	journal.Replace([]models.JournalEntry{{ID: "new", Author: "B"}})

	entries := journal.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].ID)
}
