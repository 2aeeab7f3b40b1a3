package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/pkg/clients/anthropic"
)

// ErrDisabled indicates no AI client is configured. Callers fall back to
// manual entry.
var ErrDisabled = errors.New("note assistant is not configured")

// Service turns rough field notes into a draft journal entry via the AI
// boundary. Drafts are suggestions: the keeper reviews and saves them through
// the normal journal flow, they are never committed here.
type Service struct {
	client anthropic.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new assistant instance. A nil client is allowed and
// makes DraftFromNotes return ErrDisabled.
func NewService(client anthropic.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger, now: time.Now}
}

// DraftFromNotes parses the raw notes and returns a complete draft entry
// attributed to the given author. The error is reported to the caller so the
// manual-entry fallback can be offered; it is never fatal.
func (s *Service) DraftFromNotes(ctx context.Context, rawNotes, author string) (models.JournalEntry, error) {
	if s.client == nil {
		return models.JournalEntry{}, ErrDisabled
	}

	parsed, err := s.client.ParseFieldNotes(ctx, rawNotes)
	if err != nil {
		s.logger.Warn("field note parsing failed", zap.Error(err))
		return models.JournalEntry{}, fmt.Errorf("parse field notes: %w", err)
	}

	base := models.JournalEntry{
		ID:     uuid.NewString(),
		Date:   s.now(),
		Author: author,
	}
	return MergeDraft(base, parsed), nil
}

// MergeDraft folds the parsed suggestion into a base entry. Only fields the
// model actually produced overwrite the base, so an absent suggestion leaves
// manual input intact. Absence (empty field) and failure (error from the
// parse call) are distinct conditions.
func MergeDraft(base models.JournalEntry, parsed anthropic.ParsedEntry) models.JournalEntry {
	entry := base

	if parsed.Weather.Condition != "" || parsed.Weather.Wind != "" || parsed.Weather.Temperature != 0 {
		entry.Weather = models.WeatherSnapshot{
			Temperature: parsed.Weather.Temperature,
			Condition:   parsed.Weather.Condition,
			Wind:        parsed.Weather.Wind,
		}
	}
	if parsed.Phenology != "" {
		entry.Phenology = parsed.Phenology
	}
	if parsed.Narrative != "" {
		entry.Narrative = parsed.Narrative
	}
	if parsed.TechnicalNotes.ClusterSize != "" {
		entry.TechnicalNotes.ClusterSize = parsed.TechnicalNotes.ClusterSize
	}
	entry.TechnicalNotes.QueenStatus = normalizeQueenStatus(parsed.TechnicalNotes.QueenStatus, entry.TechnicalNotes.QueenStatus)
	if len(parsed.TechnicalNotes.Interventions) > 0 {
		entry.TechnicalNotes.Interventions = parsed.TechnicalNotes.Interventions
	}
	if len(parsed.TechnicalNotes.Diseases) > 0 {
		entry.TechnicalNotes.Diseases = parsed.TechnicalNotes.Diseases
	}
	if len(parsed.Tags) > 0 {
		entry.Tags = parsed.Tags
	}

	return entry
}

func normalizeQueenStatus(suggested string, current models.QueenStatus) models.QueenStatus {
	switch models.QueenStatus(suggested) {
	case models.QueenRight, models.QueenLess, models.QueenVirgin, models.QueenUnknown:
		return models.QueenStatus(suggested)
	}
	if current != "" {
		return current
	}
	return models.QueenUnknown
}
