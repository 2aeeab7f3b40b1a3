package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/internal/store"
)

type fakeSheetRepo struct {
	appends map[string][][]interface{}
	err     error
}

func newFakeSheetRepo() *fakeSheetRepo {
	return &fakeSheetRepo{appends: make(map[string][][]interface{})}
}

func (f *fakeSheetRepo) AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.appends[sheetRange] = append(f.appends[sheetRange], rows...)
	return nil
}

func (f *fakeSheetRepo) ReadRange(ctx context.Context, sheetRange string) ([][]interface{}, error) {
	return nil, nil
}

func reportingState() *store.State {
	return store.NewState(store.Seed{
		BudgetLimit: 100,
		Expenses: []models.BudgetItem{
			{ID: "exp-1", Description: "Sugar", Amount: 45.50, Category: models.ExpenseFeed, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "exp-2", Description: "Strips", Amount: 12, Category: models.ExpenseTreatment, Date: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)},
		},
		Inventory: []models.InventoryItem{
			{ID: "inv-1", Name: "Deep Hive Body", Category: models.CategoryHiveBody, Quantity: 4, Status: models.StatusGood},
			{ID: "inv-2", Name: "Moldy Frames", Category: models.CategoryFrame, Quantity: 2, Status: models.StatusFlagged, Notes: "bag for disposal"},
		},
	})
}

func TestFiscalSummary(t *testing.T) {
	svc := NewService(reportingState(), nil, nil)

	summary := svc.FiscalSummary()
	assert.Contains(t, summary, "$57.50 spent of $100.00")
	assert.Contains(t, summary, "$42.50 remaining")
	assert.Contains(t, summary, "Feed: $45.50")
	assert.Contains(t, summary, "Treatment: $12.00")
	assert.NotContains(t, summary, "OVER BUDGET")
}

func TestFiscalSummaryOverBudget(t *testing.T) {
	state := reportingState()
	_, err := state.Budget.AddExpense(models.BudgetItem{Description: "Extractor rental", Amount: 80, Category: models.ExpenseEquipment})
	require.NoError(t, err)

	summary := NewService(state, nil, nil).FiscalSummary()
	assert.Contains(t, summary, "OVER BUDGET by $37.50")
}

func TestShedSummaryCallsOutFlaggedItems(t *testing.T) {
	summary := NewService(reportingState(), nil, nil).ShedSummary()
	assert.Contains(t, summary, "1 active items, 1 flagged")
	assert.Contains(t, summary, "FLAGGED Moldy Frames (qty 2): bag for disposal")
}

func TestExportLedgerAppendsBothRanges(t *testing.T) {
	repo := newFakeSheetRepo()
	svc := NewService(reportingState(), repo, nil)
	svc.now = func() time.Time { return time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, svc.ExportLedger(context.Background()))

	ledger := repo.appends["Budget!A:E"]
	require.Len(t, ledger, 2)
	assert.Equal(t, []interface{}{"2024-02-10", "2024-02-01", "Sugar", "Feed", 45.50}, ledger[0])

	shed := repo.appends["Inventory!A:F"]
	require.Len(t, shed, 2)
	assert.Equal(t, []interface{}{"2024-02-10", "Deep Hive Body", "Hive Body", 4, "Good", ""}, shed[0])
}

func TestExportLedgerWithoutRepoIsNoOp(t *testing.T) {
	svc := NewService(reportingState(), nil, nil)
	require.NoError(t, svc.ExportLedger(context.Background()))
}

func TestExportLedgerPropagatesRepoError(t *testing.T) {
	repo := newFakeSheetRepo()
	repo.err = errors.New("quota exceeded")
	svc := NewService(reportingState(), repo, nil)

	err := svc.ExportLedger(context.Background())
	require.ErrorIs(t, err, repo.err)
}
