package predictor

import (
	"math"
	"sort"

	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/features"
	"github.com/diabd/platform/pkg/model"
)

const maxReportedFactors = 5

// TopFactors ranks the classifier's per-feature importances and returns the
// strongest contributors as 0-100 percentages. Importances may live on the
// classifier directly or on the base estimator under one calibration layer;
// anything else yields an empty list, never an error.
func TopFactors(clf model.Classifier, featureNames []string) []models.FactorWeight {
	importances := resolveImportances(clf)
	if len(importances) == 0 {
		return []models.FactorWeight{}
	}

	ranked := make([]models.FactorWeight, 0, len(importances))
	for i, value := range importances {
		if value <= 0 || i >= len(featureNames) {
			continue
		}
		ranked = append(ranked, models.FactorWeight{
			Name:  features.DisplayName(featureNames[i]),
			Value: round3(value * 100),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if len(ranked) > maxReportedFactors {
		ranked = ranked[:maxReportedFactors]
	}
	return ranked
}

func resolveImportances(clf model.Classifier) []float64 {
	if reporter, ok := clf.(model.ImportanceReporter); ok {
		return reporter.FeatureImportances()
	}
	if calibrated, ok := clf.(*model.CalibratedClassifier); ok {
		if reporter, ok := calibrated.Base().(model.ImportanceReporter); ok {
			return reporter.FeatureImportances()
		}
	}
	return nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
