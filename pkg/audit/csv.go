package audit

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/features"
)

// CSVLog is the append-only on-disk audit trail. The header is written once
// when the file is created; rows follow the canonical feature order so the
// file lines up with the training columns.
type CSVLog struct {
	path string
	mu   sync.Mutex
}

func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

func header() []string {
	cols := append([]string{}, features.FeatureOrder...)
	return append(cols, "prediction_label", "probability_percent", "risk_level", "timestamp")
}

// Append writes one prediction record, creating the file and header on
// first use.
func (l *CSVLog) Append(entry models.AuditEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	_, statErr := os.Stat(l.path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open prediction log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if newFile {
		if err := w.Write(header()); err != nil {
			return err
		}
	}

	row := make([]string, 0, len(features.FeatureOrder)+4)
	for _, field := range features.FeatureOrder {
		row = append(row, entry.Input[field])
	}
	row = append(row,
		entry.Label,
		strconv.FormatFloat(entry.ProbabilityPercent, 'f', 2, 64),
		entry.RiskLevel,
		entry.Timestamp,
	)

	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Tail returns up to n records, newest first. A missing file is an empty
// trail, not an error.
func (l *CSVLog) Tail(n int) ([]models.AuditEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.AuditEntry{}, nil
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return []models.AuditEntry{}, nil
	}

	cols := records[0]
	rows := records[1:]
	if len(rows) > n {
		rows = rows[len(rows)-n:]
	}

	entries := make([]models.AuditEntry, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		entries = append(entries, entryFromRecord(cols, rows[i]))
	}
	return entries, nil
}

func entryFromRecord(cols, record []string) models.AuditEntry {
	entry := models.AuditEntry{Input: make(map[string]string, len(features.FeatureOrder))}
	for i, col := range cols {
		if i >= len(record) {
			break
		}
		value := record[i]
		switch col {
		case "prediction_label":
			entry.Label = value
		case "probability_percent":
			entry.ProbabilityPercent, _ = strconv.ParseFloat(value, 64)
		case "risk_level":
			entry.RiskLevel = value
		case "timestamp":
			entry.Timestamp = value
		default:
			entry.Input[col] = value
		}
	}
	return entry
}
