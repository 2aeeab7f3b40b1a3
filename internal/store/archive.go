package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pomeroybees/beeyard/internal/domain/models"
)

// Shelf maintains the reference library of filed documents. Documents are
// deletable, unlike inventory items.
type Shelf struct {
	mu   sync.RWMutex
	docs []models.ArchiveDocument
	now  func() time.Time
}

// NewShelf builds a shelf seeded with the provided documents.
func NewShelf(seed []models.ArchiveDocument) *Shelf {
	s := &Shelf{now: time.Now}
	s.docs = append(s.docs, seed...)
	return s
}

// SetClock overrides the shelf clock. Intended for tests.
func (s *Shelf) SetClock(now func() time.Time) { s.now = now }

// Documents returns the library, newest first.
func (s *Shelf) Documents() []models.ArchiveDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ArchiveDocument(nil), s.docs...)
}

// AddDocument prepends a document to the library. ID and date are assigned
// when absent.
func (s *Shelf) AddDocument(doc models.ArchiveDocument) (models.ArchiveDocument, error) {
	if strings.TrimSpace(doc.Name) == "" {
		return models.ArchiveDocument{}, fmt.Errorf("%w: document name is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.DateAdded.IsZero() {
		doc.DateAdded = s.now()
	}
	if doc.Type == "" {
		doc.Type = models.DocPDF
	}
	if doc.Category == "" {
		doc.Category = models.DocReference
	}

	s.docs = append([]models.ArchiveDocument{doc}, s.docs...)
	return doc, nil
}

// RemoveDocument deletes a document by id. Removing an id that does not
// exist is a no-op.
func (s *Shelf) RemoveDocument(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.docs[:0]
	for _, d := range s.docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.docs = kept
}
