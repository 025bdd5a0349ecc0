package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diabd/platform/pkg/common/models"
)

// artifact is the on-disk bundle layout written by the training toolchain.
type artifact struct {
	Algorithm   string        `json:"algorithm"`
	Features    []string      `json:"features"`
	Target      []string      `json:"target"`
	Timestamp   string        `json:"timestamp"`
	Tree        *DecisionTree `json:"tree"`
	Calibration *Calibration  `json:"calibration,omitempty"`
}

// ConfusionCounts are the cross-validated confusion-matrix cells.
type ConfusionCounts struct {
	TrueNegative  int `json:"tn"`
	FalsePositive int `json:"fp"`
	FalseNegative int `json:"fn"`
	TruePositive  int `json:"tp"`
}

// Metadata is the human-readable companion record stored beside the bundle.
type Metadata struct {
	Algorithm    string                `json:"algorithm"`
	TrainingDate string                `json:"training_date"`
	AccuracyCV   float64               `json:"accuracy_cv"`
	Metrics      map[string]float64    `json:"metrics,omitempty"`
	Confusion    ConfusionCounts       `json:"confusion_matrix"`
	TopFeatures  []models.FactorWeight `json:"top_features,omitempty"`
}

// Bundle is the loaded classifier plus its training metadata. It is built
// once and read-only afterwards, so unsynchronized concurrent reads are safe.
type Bundle struct {
	Algorithm  string
	Features   []string
	Target     []string
	Timestamp  string
	Classifier Classifier
	Meta       *Metadata
}

// AccuracyDisplay renders the cross-validated accuracy as a percentage
// string for API responses.
func (b *Bundle) AccuracyDisplay() string {
	acc := 0.0
	if b.Meta != nil {
		acc = b.Meta.AccuracyCV
	}
	return fmt.Sprintf("%.2f%%", acc*100)
}

// LoadBundle reads and assembles a model artifact. A calibration section in
// the artifact wraps the tree in a CalibratedClassifier.
func LoadBundle(path string) (*Bundle, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read model bundle: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(content, &art); err != nil {
		return nil, fmt.Errorf("decode model bundle: %w", err)
	}
	if art.Tree == nil || len(art.Tree.Nodes) == 0 {
		return nil, fmt.Errorf("model bundle %s has no tree", path)
	}

	var clf Classifier = art.Tree
	if art.Calibration != nil {
		clf = NewCalibratedClassifier(art.Tree, *art.Calibration)
	}

	algorithm := art.Algorithm
	if algorithm == "" {
		algorithm = "Decision Tree"
	}

	return &Bundle{
		Algorithm:  algorithm,
		Features:   art.Features,
		Target:     art.Target,
		Timestamp:  art.Timestamp,
		Classifier: clf,
	}, nil
}

// LoadMetadata reads the companion metadata record. Absence is not an error
// for serving; callers treat a nil result as "no metrics available".
func LoadMetadata(path string) (*Metadata, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(content, &meta); err != nil {
		return nil, fmt.Errorf("decode model metadata: %w", err)
	}
	return &meta, nil
}
