package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/features"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWith(glucose, bmi float32, target int) features.Sample {
	row := make(models.FeatureRow, len(features.FeatureOrder))
	for _, field := range features.FeatureOrder {
		row[field] = 0
	}
	row["age"] = 45
	row["glucose"] = glucose
	row["bmi"] = bmi
	return features.Sample{Row: row, Target: target}
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diabetes.csv")
	content := "age,gender,glucose,diabetic\n45,Male,150,Yes\n30,Female,90,No\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "45", rows[0]["age"])
	assert.Equal(t, "Female", rows[1]["gender"])
	assert.Equal(t, "Yes", rows[0]["diabetic"])
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("age,glucose\n"), 0o644))

	_, err := ReadCSV(path)
	assert.Error(t, err)
}

func TestWriteEncodedCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "diabetes_balanced.csv")
	samples := []features.Sample{
		sampleWith(8.33, 24.22, 1),
		sampleWith(5.1, 21.5, 0),
	}

	require.NoError(t, WriteEncodedCSV(path, samples))

	rows, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "8.33", rows[0]["glucose"])
	assert.Equal(t, "1", rows[0][features.TargetField])
	assert.Equal(t, "21.5", rows[1]["bmi"])
	assert.Equal(t, "0", rows[1][features.TargetField])
}

func TestDistribution(t *testing.T) {
	samples := []features.Sample{
		sampleWith(8, 24, 1),
		sampleWith(5, 21, 0),
		sampleWith(6, 22, 0),
	}
	counts := Distribution(samples)
	assert.Equal(t, map[int]int{0: 2, 1: 1}, counts)
}

func TestOversampleEqualizesClasses(t *testing.T) {
	samples := []features.Sample{
		sampleWith(5.0, 20.0, 0),
		sampleWith(5.5, 21.0, 0),
		sampleWith(6.0, 22.0, 0),
		sampleWith(6.5, 23.0, 0),
		sampleWith(9.0, 28.0, 1),
		sampleWith(10.0, 30.0, 1),
	}

	balanced := Oversample(samples, 42)
	counts := Distribution(balanced)
	assert.Equal(t, counts[0], counts[1])
	assert.Len(t, balanced, 8)

	// Originals are untouched at the front.
	assert.Equal(t, samples[0].Row["glucose"], balanced[0].Row["glucose"])
}

func TestOversampleInterpolatesWithinMinorityRange(t *testing.T) {
	samples := []features.Sample{
		sampleWith(5.0, 20.0, 0),
		sampleWith(5.5, 21.0, 0),
		sampleWith(6.0, 22.0, 0),
		sampleWith(9.0, 28.0, 1),
		sampleWith(10.0, 30.0, 1),
	}

	balanced := Oversample(samples, 42)
	for _, sample := range balanced[len(samples):] {
		assert.Equal(t, 1, sample.Target)
		g := sample.Row["glucose"]
		assert.GreaterOrEqual(t, g, float32(9.0))
		assert.LessOrEqual(t, g, float32(10.0))
	}
}

func TestOversampleDeterministicBySeed(t *testing.T) {
	samples := []features.Sample{
		sampleWith(5.0, 20.0, 0),
		sampleWith(5.5, 21.0, 0),
		sampleWith(6.0, 22.0, 0),
		sampleWith(9.0, 28.0, 1),
	}

	first := Oversample(samples, 42)
	second := Oversample(samples, 42)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Target, second[i].Target)
		assert.Equal(t, first[i].Row["glucose"], second[i].Row["glucose"])
	}
}

func TestOversampleAlreadyBalanced(t *testing.T) {
	samples := []features.Sample{
		sampleWith(5.0, 20.0, 0),
		sampleWith(9.0, 28.0, 1),
	}
	assert.Len(t, Oversample(samples, 42), 2)
}

func TestOversampleSingleClass(t *testing.T) {
	samples := []features.Sample{
		sampleWith(5.0, 20.0, 0),
		sampleWith(5.5, 21.0, 0),
	}
	assert.Len(t, Oversample(samples, 42), 2)
}
