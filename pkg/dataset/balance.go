package dataset

import (
	"math"
	"math/rand"

	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/features"
)

// Oversample equalizes the class distribution by synthesizing minority-class
// rows. Each synthetic row interpolates the numeric fields of two random
// minority samples and keeps the categorical fields of the first, so the
// balanced file stays within the observed clinical ranges. Deterministic for
// a given seed.
func Oversample(samples []features.Sample, seed int64) []features.Sample {
	counts := Distribution(samples)
	if len(counts) < 2 {
		return samples
	}

	minority, majority := 0, 1
	if counts[1] < counts[0] {
		minority, majority = 1, 0
	}
	deficit := counts[majority] - counts[minority]
	if deficit == 0 {
		return samples
	}

	pool := make([]features.Sample, 0, counts[minority])
	for _, sample := range samples {
		if sample.Target == minority {
			pool = append(pool, sample)
		}
	}
	if len(pool) == 0 {
		return samples
	}

	rng := rand.New(rand.NewSource(seed))
	balanced := append([]features.Sample{}, samples...)
	for i := 0; i < deficit; i++ {
		base := pool[rng.Intn(len(pool))]
		peer := pool[rng.Intn(len(pool))]
		balanced = append(balanced, synthesize(base, peer, rng.Float64(), minority))
	}
	return balanced
}

func synthesize(base, peer features.Sample, gap float64, target int) features.Sample {
	row := make(models.FeatureRow, len(features.FeatureOrder))
	for _, field := range features.FeatureOrder {
		row[field] = base.Row[field]
	}
	for _, field := range features.NumericFields {
		b := float64(base.Row[field])
		p := float64(peer.Row[field])
		row[field] = float32(round2(b + gap*(p-b)))
	}
	return features.Sample{Row: row, Target: target}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
