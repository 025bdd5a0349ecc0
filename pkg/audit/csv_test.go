package audit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diabd/platform/pkg/common/logger"
	"github.com/diabd/platform/pkg/common/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testEntry(label string, probability float64) models.AuditEntry {
	return models.AuditEntry{
		Input: map[string]string{
			"age": "45", "gender": "Male", "glucose": "150",
		},
		Label:              label,
		ProbabilityPercent: probability,
		RiskLevel:          "High",
		Timestamp:          "2025-11-02 10:00:00",
	}
}

func TestCSVLogAppendAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "prediction_logs.csv")
	log := NewCSVLog(path)

	require.NoError(t, log.Append(testEntry("Non-Diabetic", 12.5)))
	require.NoError(t, log.Append(testEntry("Diabetic", 95.0)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3, "header plus two rows")
	assert.True(t, strings.HasPrefix(lines[0], "age,gender,pulse_rate"))

	entries, err := log.Tail(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "Diabetic", entries[0].Label)
	assert.InDelta(t, 95.0, entries[0].ProbabilityPercent, 0.001)
	assert.Equal(t, "Non-Diabetic", entries[1].Label)
	assert.Equal(t, "45", entries[0].Input["age"])
}

func TestCSVLogTailLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prediction_logs.csv")
	log := NewCSVLog(path)

	for i := 0; i < 5; i++ {
		require.NoError(t, log.Append(testEntry("Diabetic", float64(i))))
	}

	entries, err := log.Tail(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.InDelta(t, 4.0, entries[0].ProbabilityPercent, 0.001)
	assert.InDelta(t, 3.0, entries[1].ProbabilityPercent, 0.001)
}

func TestCSVLogTailMissingFile(t *testing.T) {
	log := NewCSVLog(filepath.Join(t.TempDir(), "nope.csv"))
	entries, err := log.Tail(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestServiceRecordSwallowsSinkFailures(t *testing.T) {
	// A CSV path pointing into a file (not a directory) forces the append to
	// fail; Record must not propagate it.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	svc := NewService(NewCSVLog(filepath.Join(blocker, "log.csv")), nil, nil, nil)

	svc.Record(context.Background(), models.RawInput{"age": 45}, models.PredictionResult{
		Success:            true,
		Label:              "Diabetic",
		ProbabilityPercent: 95,
	}, "High")
}

func TestServiceRecentFallsBackToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prediction_logs.csv")
	log := NewCSVLog(path)
	require.NoError(t, log.Append(testEntry("Diabetic", 95)))

	svc := NewService(log, nil, nil, nil)
	entries, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
