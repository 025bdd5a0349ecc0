package evaluation

import (
	"fmt"

	"github.com/diabd/platform/pkg/model"
)

// Report carries the binary-classification metric set the evaluation CLI
// writes alongside the model metadata.
type Report struct {
	Samples     int                   `json:"samples"`
	Accuracy    float64               `json:"accuracy"`
	Precision   float64               `json:"precision"`
	Recall      float64               `json:"recall"`
	Specificity float64               `json:"specificity"`
	F1          float64               `json:"f1_score"`
	ROCAUC      float64               `json:"roc_auc"`
	Confusion   model.ConfusionCounts `json:"confusion_matrix"`
}

// Evaluate computes binary metrics for class 1 as the positive class.
// Slices must be aligned; yProba backs the ROC-AUC and may repeat yPred when
// the classifier has no probability capability.
func Evaluate(yTrue, yPred []int, yProba []float64) (Report, error) {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) || len(yTrue) != len(yProba) {
		return Report{}, fmt.Errorf("evaluation inputs misaligned: %d/%d/%d", len(yTrue), len(yPred), len(yProba))
	}

	var cm model.ConfusionCounts
	for i, truth := range yTrue {
		switch {
		case truth == 1 && yPred[i] == 1:
			cm.TruePositive++
		case truth == 1 && yPred[i] != 1:
			cm.FalseNegative++
		case truth == 0 && yPred[i] == 1:
			cm.FalsePositive++
		default:
			cm.TrueNegative++
		}
	}

	report := Report{
		Samples:     len(yTrue),
		Accuracy:    ratio(cm.TruePositive+cm.TrueNegative, len(yTrue)),
		Precision:   ratio(cm.TruePositive, cm.TruePositive+cm.FalsePositive),
		Recall:      ratio(cm.TruePositive, cm.TruePositive+cm.FalseNegative),
		Specificity: ratio(cm.TrueNegative, cm.TrueNegative+cm.FalsePositive),
		Confusion:   cm,
	}
	if report.Precision+report.Recall > 0 {
		report.F1 = 2 * report.Precision * report.Recall / (report.Precision + report.Recall)
	}
	report.ROCAUC = rocAUC(yTrue, yProba)

	return report, nil
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

// rocAUC is the Mann-Whitney formulation: the probability a random positive
// scores above a random negative, ties counting half.
func rocAUC(yTrue []int, yProba []float64) float64 {
	var positives, negatives []float64
	for i, truth := range yTrue {
		if truth == 1 {
			positives = append(positives, yProba[i])
		} else {
			negatives = append(negatives, yProba[i])
		}
	}
	if len(positives) == 0 || len(negatives) == 0 {
		return 0
	}

	wins := 0.0
	for _, p := range positives {
		for _, n := range negatives {
			switch {
			case p > n:
				wins++
			case p == n:
				wins += 0.5
			}
		}
	}
	return wins / float64(len(positives)*len(negatives))
}
