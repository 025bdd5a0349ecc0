package models

import "time"

// RawInput is one unvalidated patient record as received from the API or a
// dataset row. Values may be numbers, numeric strings, yes/no words or absent.
type RawInput map[string]interface{}

// FeatureRow is the canonical numeric representation of one patient. Field
// order is defined by the feature schema, not by map iteration.
type FeatureRow map[string]float32

// ValidationResult lists completeness problems found before encoding.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// FactorWeight is one ranked contributing feature, scaled to a 0-100 percent.
type FactorWeight struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ModelInfo struct {
	Name     string `json:"name"`
	Accuracy string `json:"accuracy"`
}

// PredictionResult is the request-scoped outcome of one inference. On failure
// only Success and Error are populated.
type PredictionResult struct {
	Success            bool           `json:"success"`
	Error              string         `json:"error,omitempty"`
	Label              string         `json:"label,omitempty"`
	ProbabilityPercent float64        `json:"probability_percent"`
	RiskLevel          string         `json:"risk_level,omitempty"`
	Interpretation     string         `json:"interpretation,omitempty"`
	InputData          FeatureRow     `json:"input_data,omitempty"`
	FeatureImportance  []FactorWeight `json:"feature_importance"`
	ModelInfo          ModelInfo      `json:"model_info"`
	Timestamp          string         `json:"timestamp,omitempty"`
}

// AuditEntry is one persisted prediction record, newest-first in listings.
type AuditEntry struct {
	ID                 string            `json:"id"`
	Input              map[string]string `json:"input"`
	Label              string            `json:"prediction_label"`
	ProbabilityPercent float64           `json:"probability_percent"`
	RiskLevel          string            `json:"risk_level"`
	Timestamp          string            `json:"timestamp"`
}

// Event is the message envelope published to the event bus.
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}

// SystemStatus summarizes on-disk readiness of the serving artifacts.
type SystemStatus struct {
	Directories  map[string]bool `json:"directories"`
	Files        map[string]bool `json:"files"`
	ModelSummary *ModelSummary   `json:"model_summary,omitempty"`
}

type ModelSummary struct {
	Accuracy  string `json:"accuracy"`
	Date      string `json:"date"`
	Algorithm string `json:"algorithm"`
}
