package model

import "math"

// Classifier predicts a hard class label from a feature vector in canonical
// training order.
type Classifier interface {
	Predict(x []float32) int
}

// ProbabilityClassifier additionally exposes P(class=1).
type ProbabilityClassifier interface {
	PredictProba(x []float32) float64
}

// ImportanceReporter exposes per-feature importances aligned with the
// trained feature order.
type ImportanceReporter interface {
	FeatureImportances() []float64
}

// TreeNode is one node of a serialized CART tree. Feature is -1 on leaves.
type TreeNode struct {
	Feature   int        `json:"feature"`
	Threshold float32    `json:"threshold"`
	Left      int        `json:"left"`
	Right     int        `json:"right"`
	Value     [2]float64 `json:"value"`
}

// DecisionTree is the trained classifier as exported by the training
// toolchain. Traversal is read-only and safe for concurrent use.
type DecisionTree struct {
	Nodes       []TreeNode `json:"nodes"`
	Importances []float64  `json:"importances,omitempty"`
}

func (t *DecisionTree) PredictProba(x []float32) float64 {
	if len(t.Nodes) == 0 {
		return 0
	}
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.Feature < 0 || node.Feature >= len(x) {
			total := node.Value[0] + node.Value[1]
			if total == 0 {
				return 0
			}
			return node.Value[1] / total
		}
		if x[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
		if idx <= 0 || idx >= len(t.Nodes) {
			total := node.Value[0] + node.Value[1]
			if total == 0 {
				return 0
			}
			return node.Value[1] / total
		}
	}
}

func (t *DecisionTree) Predict(x []float32) int {
	if t.PredictProba(x) >= 0.5 {
		return 1
	}
	return 0
}

func (t *DecisionTree) FeatureImportances() []float64 {
	return t.Importances
}

// Calibration is the sigmoid (Platt) rescaling fitted during training.
type Calibration struct {
	Method string  `json:"method"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
}

// CalibratedClassifier wraps the base tree with a sigmoid calibration layer.
// The wrapper itself reports no importances; callers that need them go
// through Base(), one documented layer deep.
type CalibratedClassifier struct {
	tree *DecisionTree
	cal  Calibration
}

func NewCalibratedClassifier(tree *DecisionTree, cal Calibration) *CalibratedClassifier {
	return &CalibratedClassifier{tree: tree, cal: cal}
}

func (c *CalibratedClassifier) PredictProba(x []float32) float64 {
	raw := c.tree.PredictProba(x)
	return 1 / (1 + math.Exp(c.cal.A*raw+c.cal.B))
}

func (c *CalibratedClassifier) Predict(x []float32) int {
	if c.PredictProba(x) >= 0.5 {
		return 1
	}
	return 0
}

// Base returns the wrapped estimator.
func (c *CalibratedClassifier) Base() Classifier {
	return c.tree
}
