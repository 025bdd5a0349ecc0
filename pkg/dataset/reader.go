package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/features"
)

// ReadCSV loads a raw dataset file into unvalidated rows keyed by the header
// columns. Values stay as strings; the encoder owns all coercion.
func ReadCSV(path string) ([]models.RawInput, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset %s has no rows", path)
	}

	cols := records[0]
	rows := make([]models.RawInput, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.RawInput, len(cols))
		for i, col := range cols {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteEncodedCSV writes fully numeric samples with the target as the last
// column, in canonical feature order.
func WriteEncodedCSV(path string, samples []features.Sample) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append(append([]string{}, features.FeatureOrder...), features.TargetField)
	if err := w.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, sample := range samples {
		for i, field := range features.FeatureOrder {
			record[i] = strconv.FormatFloat(float64(sample.Row[field]), 'f', -1, 32)
		}
		record[len(record)-1] = strconv.Itoa(sample.Target)
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Distribution counts samples per target class.
func Distribution(samples []features.Sample) map[int]int {
	counts := make(map[int]int)
	for _, sample := range samples {
		counts[sample.Target]++
	}
	return counts
}
