package predictor

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/diabd/platform/pkg/common/logger"
	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/features"
	"github.com/diabd/platform/pkg/model"
)

const (
	LabelDiabetic    = "Diabetic"
	LabelNonDiabetic = "Non-Diabetic"
)

// Predictor runs the full inference pipeline: encode, classify, interpret.
// It is stateless apart from the injected read-only model handle and safe
// for concurrent use.
type Predictor struct {
	loader  *model.Loader
	encoder *features.Encoder
}

func New(loader *model.Loader, encoder *features.Encoder) *Predictor {
	return &Predictor{loader: loader, encoder: encoder}
}

// Predict encodes one raw patient row and produces the five-band clinical
// result. Every failure mode resolves to a well-formed result object; no
// fault escapes this boundary.
func (p *Predictor) Predict(raw models.RawInput) (result models.PredictionResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.WithField("panic", r).Error("prediction panicked")
			result = failure(fmt.Sprintf("internal prediction error: %v", r))
		}
	}()

	bundle, err := p.loader.Get()
	if err != nil {
		return failure(err.Error())
	}

	row, err := p.encoder.EncodeRow(raw)
	if err != nil {
		if errors.Is(err, features.ErrEmptyInput) {
			return failure("clinical validation failed: input row is empty")
		}
		return failure(fmt.Sprintf("internal prediction error: %v", err))
	}

	vec := features.Vector(row)
	probability := classProbability(bundle.Classifier, vec)

	label := LabelNonDiabetic
	if probability >= 0.5 {
		label = LabelDiabetic
	}

	tier, narrative := Interpret(probability)

	names := bundle.Features
	if len(names) == 0 {
		names = features.FeatureOrder
	}

	return models.PredictionResult{
		Success:            true,
		Label:              label,
		ProbabilityPercent: round2(probability * 100),
		RiskLevel:          tier,
		Interpretation:     narrative,
		InputData:          row,
		FeatureImportance:  TopFactors(bundle.Classifier, names),
		ModelInfo: models.ModelInfo{
			Name:     bundle.Algorithm,
			Accuracy: bundle.AccuracyDisplay(),
		},
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}
}

// classProbability prefers the probability capability and falls back to
// synthesizing {0,1} from a hard label.
func classProbability(clf model.Classifier, vec []float32) float64 {
	if probabilistic, ok := clf.(model.ProbabilityClassifier); ok {
		return probabilistic.PredictProba(vec)
	}
	if clf.Predict(vec) == 1 {
		return 1.0
	}
	return 0.0
}

func failure(msg string) models.PredictionResult {
	return models.PredictionResult{
		Success:           false,
		Error:             msg,
		FeatureImportance: []models.FactorWeight{},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
