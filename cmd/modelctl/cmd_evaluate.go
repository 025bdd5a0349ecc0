package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diabd/platform/pkg/common/config"
	"github.com/diabd/platform/pkg/common/logger"
	"github.com/diabd/platform/pkg/dataset"
	"github.com/diabd/platform/pkg/evaluation"
	"github.com/diabd/platform/pkg/features"
	"github.com/diabd/platform/pkg/model"
	"github.com/diabd/platform/pkg/vocabulary"
	"github.com/spf13/cobra"
)

var evaluateFlags struct {
	data   string
	report string
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the full metric set over a labeled dataset",
	RunE:  runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&evaluateFlags.data, "data", "", "Labeled dataset CSV (defaults to BALANCED_DATA_PATH)")
	f.StringVar(&evaluateFlags.report, "report", "", "Report destination (defaults to <models dir>/evaluation_report.json)")
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	dataPath := evaluateFlags.data
	if dataPath == "" {
		dataPath = cfg.BalancedDataPath
	}
	reportPath := evaluateFlags.report
	if reportPath == "" {
		reportPath = filepath.Join(cfg.ModelsDir, "evaluation_report.json")
	}

	bundle, err := model.LoadBundle(cfg.ModelPath)
	if err != nil {
		return err
	}

	vocab, err := vocabulary.Load(cfg.VocabularyPath)
	if err != nil {
		logger.Log.WithError(err).Warn("Vocabulary file unavailable, using defaults")
	}
	encoder := features.NewEncoder(vocab)

	rows, err := dataset.ReadCSV(dataPath)
	if err != nil {
		return err
	}
	samples, err := encoder.EncodeDataset(rows, true)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	yTrue := make([]int, len(samples))
	yPred := make([]int, len(samples))
	yProba := make([]float64, len(samples))
	probabilistic, hasProba := bundle.Classifier.(model.ProbabilityClassifier)

	for i, sample := range samples {
		vec := features.Vector(sample.Row)
		yTrue[i] = sample.Target
		yPred[i] = bundle.Classifier.Predict(vec)
		if hasProba {
			yProba[i] = probabilistic.PredictProba(vec)
		} else {
			yProba[i] = float64(yPred[i])
		}
	}

	report, err := evaluation.Evaluate(yTrue, yPred, yProba)
	if err != nil {
		return err
	}

	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(reportPath, content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Samples:     %d\n", report.Samples)
	fmt.Fprintf(out, "Accuracy:    %.4f\n", report.Accuracy)
	fmt.Fprintf(out, "Precision:   %.4f\n", report.Precision)
	fmt.Fprintf(out, "Recall:      %.4f\n", report.Recall)
	fmt.Fprintf(out, "Specificity: %.4f\n", report.Specificity)
	fmt.Fprintf(out, "F1:          %.4f\n", report.F1)
	fmt.Fprintf(out, "ROC-AUC:     %.4f\n", report.ROCAUC)
	fmt.Fprintf(out, "Confusion:   tn=%d fp=%d fn=%d tp=%d\n",
		report.Confusion.TrueNegative, report.Confusion.FalsePositive,
		report.Confusion.FalseNegative, report.Confusion.TruePositive)
	fmt.Fprintf(out, "Report written to %s\n", reportPath)
	return nil
}
