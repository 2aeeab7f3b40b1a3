package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	repo "github.com/pomeroybees/beeyard/internal/repository/sheets"
	"github.com/pomeroybees/beeyard/internal/store"
)

const (
	dateLayout          = "2006-01-02"
	ledgerWriteRange    = "Budget!A:E"
	inventoryWriteRange = "Inventory!A:F"
)

// Service publishes fiscal and shed summaries for the community board: a
// human-readable text summary and, when a spreadsheet is configured, rows
// appended to the shared sheet.
type Service struct {
	state  *store.State
	repo   repo.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new reporting service instance. The sheets repository
// may be nil, in which case exports are skipped.
func NewService(state *store.State, repository repo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{state: state, repo: repository, logger: logger, now: time.Now}
}

// FiscalSummary formats the current budget position with per-category spend.
func (s *Service) FiscalSummary() string {
	health := s.state.Budget.Health()
	limit := s.state.Budget.Limit()

	byCategory := map[models.ExpenseCategory]float64{}
	for _, e := range s.state.Budget.Expenses() {
		byCategory[e.Category] += e.Amount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Budget: $%.2f spent of $%.2f (%.0f%% utilized).", health.TotalSpent, limit, health.UtilizationPercent)
	if health.OverBudget {
		fmt.Fprintf(&b, " OVER BUDGET by $%.2f.", -health.Remaining)
	} else {
		fmt.Fprintf(&b, " $%.2f remaining.", health.Remaining)
	}

	for _, cat := range []models.ExpenseCategory{models.ExpenseConsumable, models.ExpenseFeed, models.ExpenseTreatment, models.ExpenseEquipment} {
		if total, ok := byCategory[cat]; ok {
			fmt.Fprintf(&b, "\n  %s: $%.2f", cat, total)
		}
	}

	return b.String()
}

// ShedSummary formats the inventory position, calling out items flagged for
// disposal review.
func (s *Service) ShedSummary() string {
	active := s.state.Inventory.ListActive()
	flagged := s.state.Inventory.ListFlagged()

	summary := fmt.Sprintf("Shed: %d active items, %d flagged for removal.", len(active), len(flagged))
	for _, item := range flagged {
		summary += fmt.Sprintf("\n  FLAGGED %s (qty %d): %s", item.Name, item.Quantity, item.Notes)
	}
	return summary
}

// ExportLedger appends the current expense ledger and inventory snapshot to
// the community spreadsheet. A nil repository makes this a no-op.
func (s *Service) ExportLedger(ctx context.Context) error {
	if s.repo == nil {
		s.logger.Debug("sheets repository not configured, skipping ledger export")
		return nil
	}

	stamp := s.now().Format(dateLayout)

	var ledgerRows [][]interface{}
	for _, e := range s.state.Budget.Expenses() {
		ledgerRows = append(ledgerRows, []interface{}{
			stamp, e.Date.Format(dateLayout), e.Description, string(e.Category), e.Amount,
		})
	}
	if err := s.repo.AppendRows(ctx, ledgerWriteRange, ledgerRows); err != nil {
		return fmt.Errorf("export ledger: %w", err)
	}

	var shedRows [][]interface{}
	for _, item := range s.state.Inventory.Items() {
		shedRows = append(shedRows, []interface{}{
			stamp, item.Name, string(item.Category), item.Quantity, string(item.Status), item.Notes,
		})
	}
	if err := s.repo.AppendRows(ctx, inventoryWriteRange, shedRows); err != nil {
		return fmt.Errorf("export shed snapshot: %w", err)
	}

	s.logger.Info("ledger exported to sheet",
		zap.Int("expense_rows", len(ledgerRows)),
		zap.Int("inventory_rows", len(shedRows)))
	return nil
}
