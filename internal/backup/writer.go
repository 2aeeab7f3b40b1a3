package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Writer persists backup documents as timestamped JSON files in a snapshot
// directory. Snapshots are best-effort; the in-memory state stays the source
// of truth.
type Writer struct {
	dir    string
	logger *zap.Logger
}

// NewWriter builds a snapshot writer rooted at dir.
func NewWriter(dir string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{dir: dir, logger: logger}
}

// Write stores the document as beeyard_backup_<date>.json, creating the
// snapshot directory if needed. Same-day snapshots overwrite each other.
func (w *Writer) Write(doc Document) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal backup document: %w", err)
	}

	name := fmt.Sprintf("beeyard_backup_%s.json", doc.Timestamp.Format("2006-01-02"))
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", path, err)
	}

	w.logger.Info("backup snapshot written", zap.String("path", path))
	return path, nil
}

// Load reads a backup document back from disk.
func Load(path string) (Document, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return Document{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	return doc, nil
}
