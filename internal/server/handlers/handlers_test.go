package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/internal/server/handlers"
	"github.com/pomeroybees/beeyard/internal/server/router"
	"github.com/pomeroybees/beeyard/internal/service/assistant"
	"github.com/pomeroybees/beeyard/internal/service/sketch"
	"github.com/pomeroybees/beeyard/internal/store"
)

func newTestRouter(t *testing.T, state *store.State) *gin.Engine {
	t.Helper()

	cache := sketch.NewCache(filepath.Join(t.TempDir(), "cache.json"), nil)
	return router.New(router.Handlers{
		Journal:   handlers.NewJournalHandler(state, nil),
		Colonies:  handlers.NewColonyHandler(state, nil),
		Inventory: handlers.NewInventoryHandler(state, nil),
		Budget:    handlers.NewBudgetHandler(state, nil),
		Crew:      handlers.NewCrewHandler(state, nil),
		Archive:   handlers.NewArchiveHandler(state, nil),
		Assistant: handlers.NewAssistantHandler(assistant.NewService(nil, nil), sketch.NewService(nil, cache, nil), nil),
	}, nil)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestInventoryCreateAndUpdateFlow(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{}))

	rec := doJSON(t, engine, http.MethodPost, "/api/inventory", gin.H{
		"name":     "Deep Hive Body",
		"category": "Hive Body",
		"quantity": 4,
		"log":      gin.H{"actor": "J", "note": "initial stock"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.InventoryItem
	decodeInto(t, rec, &item)
	require.Len(t, item.History, 1)
	assert.Equal(t, models.ActionCreated, item.History[0].Action)

	rec = doJSON(t, engine, http.MethodPut, "/api/inventory/"+item.ID, gin.H{
		"quantity": 6,
		"log":      gin.H{"action": "Restocked", "actor": "Mark C.", "note": "two more from the co-op"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.InventoryItem
	decodeInto(t, rec, &updated)
	assert.Equal(t, 6, updated.Quantity)
	require.Len(t, updated.History, 2)
	assert.Equal(t, models.ActionRestocked, updated.History[1].Action)
	assert.Equal(t, "two more from the co-op", updated.Notes)

	// the history endpoint serves just the trail
	rec = doJSON(t, engine, http.MethodGet, "/api/inventory/"+item.ID+"/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []models.InventoryLog
	decodeInto(t, rec, &history)
	assert.Len(t, history, 2)
}

func TestInventoryValidationAndNotFound(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{}))

	// missing log note is a 400
	rec := doJSON(t, engine, http.MethodPost, "/api/inventory", gin.H{
		"name": "Smoker",
		"log":  gin.H{"actor": "J"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodPut, "/api/inventory/ghost", gin.H{
		"log": gin.H{"actor": "J", "note": "n"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInventoryListViews(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{
		Inventory: []models.InventoryItem{
			{ID: "inv-1", Name: "Hive Tool", Status: models.StatusGood},
			{ID: "inv-2", Name: "Moldy Frames", Status: models.StatusFlagged},
		},
	}))

	var active []models.InventoryItem
	decodeInto(t, doJSON(t, engine, http.MethodGet, "/api/inventory?view=active", nil), &active)
	require.Len(t, active, 1)
	assert.Equal(t, "inv-1", active[0].ID)

	var flagged []models.InventoryItem
	decodeInto(t, doJSON(t, engine, http.MethodGet, "/api/inventory?view=flagged", nil), &flagged)
	require.Len(t, flagged, 1)
	assert.Equal(t, "inv-2", flagged[0].ID)

	var all []models.InventoryItem
	decodeInto(t, doJSON(t, engine, http.MethodGet, "/api/inventory", nil), &all)
	assert.Len(t, all, 2)
}

func TestBudgetFlow(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{BudgetLimit: 100}))

	rec := doJSON(t, engine, http.MethodPost, "/api/budget/expenses", gin.H{
		"description": "Sugar",
		"amount":      45.50,
		"category":    "Feed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var expense models.BudgetItem
	decodeInto(t, rec, &expense)
	assert.NotEmpty(t, expense.ID)

	rec = doJSON(t, engine, http.MethodGet, "/api/budget", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		Limit    float64             `json:"limit"`
		Expenses []models.BudgetItem `json:"expenses"`
		Health   models.BudgetHealth `json:"health"`
	}
	decodeInto(t, rec, &view)
	assert.Equal(t, 100.0, view.Limit)
	require.Len(t, view.Expenses, 1)
	assert.Equal(t, 45.50, view.Health.TotalSpent)
	assert.Equal(t, 54.50, view.Health.Remaining)

	rec = doJSON(t, engine, http.MethodPut, "/api/budget/limit", gin.H{"limit": 250})
	require.Equal(t, http.StatusOK, rec.Code)

	// idempotent delete answers 204 either way
	rec = doJSON(t, engine, http.MethodDelete, "/api/budget/expenses/"+expense.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, engine, http.MethodDelete, "/api/budget/expenses/"+expense.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBudgetRejectsNegativeExpense(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{BudgetLimit: 100}))

	rec := doJSON(t, engine, http.MethodPost, "/api/budget/expenses", gin.H{
		"description": "refund?",
		"amount":      -5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournalSaveAndList(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{}))

	rec := doJSON(t, engine, http.MethodPost, "/api/journal", gin.H{
		"author":    "Justin S.",
		"narrative": "calm yard, light traffic at all entrances",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var saved models.JournalEntry
	decodeInto(t, rec, &saved)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.Date.IsZero())

	// editing by id keeps a single entry
	saved.Narrative = "calm yard, corrected"
	rec = doJSON(t, engine, http.MethodPost, "/api/journal", saved)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.JournalEntry
	decodeInto(t, doJSON(t, engine, http.MethodGet, "/api/journal", nil), &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "calm yard, corrected", entries[0].Narrative)
}

func TestColonyEndpoints(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{}))

	rec := doJSON(t, engine, http.MethodPost, "/api/colonies", gin.H{
		"name":   "Hive Alpha",
		"type":   "Overwintered",
		"status": "Active",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var colony models.ColonyProfile
	decodeInto(t, rec, &colony)

	colony.HealthScore = 72
	rec = doJSON(t, engine, http.MethodPut, "/api/colonies/"+colony.ID, colony)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPut, "/api/colonies/ghost", colony)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBackupExportRestoreRoundTrip(t *testing.T) {
	seeded := store.NewState(store.DefaultSeed())
	engine := newTestRouter(t, seeded)

	rec := doJSON(t, engine, http.MethodGet, "/api/backup", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "beeyard_backup_")
	exported := rec.Body.Bytes()

	// restore the download into a blank deployment
	blank := store.NewState(store.Seed{})
	blankEngine := newTestRouter(t, blank)

	req := httptest.NewRequest(http.MethodPost, "/api/backup/restore", bytes.NewReader(exported))
	req.Header.Set("Content-Type", "application/json")
	restoreRec := httptest.NewRecorder()
	blankEngine.ServeHTTP(restoreRec, req)
	require.Equal(t, http.StatusNoContent, restoreRec.Code)

	assert.Equal(t, seeded.Budget.Limit(), blank.Budget.Limit())
	assert.Len(t, blank.Journal.Entries(), len(seeded.Journal.Entries()))
	assert.Len(t, blank.Inventory.Items(), len(seeded.Inventory.Items()))
	assert.Len(t, blank.Colonies.Colonies(), len(seeded.Colonies.Colonies()))
}

func TestArchiveDocumentLifecycle(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{}))

	rec := doJSON(t, engine, http.MethodPost, "/api/archive", gin.H{"name": "Winter Prep Checklist"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var doc models.ArchiveDocument
	decodeInto(t, rec, &doc)
	assert.Equal(t, models.DocPDF, doc.Type)

	rec = doJSON(t, engine, http.MethodDelete, "/api/archive/"+doc.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var docs []models.ArchiveDocument
	decodeInto(t, doJSON(t, engine, http.MethodGet, "/api/archive", nil), &docs)
	assert.Empty(t, docs)
}

func TestCrewEndpoints(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{}))

	rec := doJSON(t, engine, http.MethodPost, "/api/crew", gin.H{"name": "Justin Sommers", "role": "Lead Keeper"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var member models.CrewMember
	decodeInto(t, rec, &member)
	assert.Equal(t, "JS", member.Initials)

	rec = doJSON(t, engine, http.MethodPost, "/api/crew", gin.H{"name": "No Role"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssistantDisabledAnswers503(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{}))

	rec := doJSON(t, engine, http.MethodPost, "/api/assistant/parse-notes", gin.H{
		"rawNotes": "foggy, bees quiet",
		"author":   "Justin S.",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/sketches", gin.H{"id": "f1", "subject": "Rosemary"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBloomEndpoint(t *testing.T) {
	engine := newTestRouter(t, store.NewState(store.Seed{}))

	rec := doJSON(t, engine, http.MethodGet, "/api/bloom", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// the list depends on the wall-clock month; just check the shape
	var plants []models.Flora
	decodeInto(t, rec, &plants)
	for _, plant := range plants {
		assert.NotEmpty(t, plant.ID)
		assert.NotEmpty(t, plant.CommonName)
	}
}
