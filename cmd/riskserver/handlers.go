package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/diabd/platform/pkg/common/logger"
	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/features"
	"github.com/diabd/platform/pkg/model"
	"github.com/diabd/platform/pkg/predictor"
)

// predictResponse is the web-API shape. risk_level carries the coarser
// three-band tier this surface has always served; the five-band clinical
// tier and its narrative ride alongside so the two threshold sets stay
// distinct.
type predictResponse struct {
	Success            bool                  `json:"success"`
	Label              string                `json:"label"`
	ProbabilityPercent float64               `json:"probability_percent"`
	RiskLevel          string                `json:"risk_level"`
	ClinicalRiskLevel  string                `json:"clinical_risk_level"`
	Interpretation     string                `json:"interpretation"`
	InputData          models.FeatureRow     `json:"input_data"`
	FeatureImportance  []models.FactorWeight `json:"feature_importance"`
	ModelInfo          models.ModelInfo      `json:"model_info"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *RiskServer) handlePredict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestBody)

	var raw models.RawInput
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || len(raw) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request payload"})
		return
	}

	if validation := features.Validate(raw); !validation.IsValid {
		logger.Log.WithField("errors", len(validation.Errors)).Debug("incomplete prediction input")
	}

	// Predict retries the model load internally, so an unavailable error here
	// means the reload attempt also failed.
	result := s.predictor.Predict(raw)
	if !result.Success {
		status := http.StatusInternalServerError
		if strings.Contains(result.Error, model.ErrModelUnavailable.Error()) {
			status = http.StatusServiceUnavailable
		} else if strings.Contains(result.Error, "input row is empty") {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: result.Error})
		return
	}

	apiRisk := predictor.APIRiskLevel(result.ProbabilityPercent / 100)

	s.audit.Record(r.Context(), raw, result, apiRisk)

	writeJSON(w, http.StatusOK, predictResponse{
		Success:            true,
		Label:              result.Label,
		ProbabilityPercent: result.ProbabilityPercent,
		RiskLevel:          apiRisk,
		ClinicalRiskLevel:  result.RiskLevel,
		Interpretation:     result.Interpretation,
		InputData:          result.InputData,
		FeatureImportance:  result.FeatureImportance,
		ModelInfo:          result.ModelInfo,
	})
}

func (s *RiskServer) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	meta, err := model.LoadMetadata(s.cfg.MetaPath)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (s *RiskServer) handleLogs(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.AuditRecentLimit
	if param := r.URL.Query().Get("limit"); param != "" {
		if n, err := strconv.Atoi(param); err == nil && n > 0 && n <= s.cfg.AuditRecentLimit {
			limit = n
		}
	}

	entries, err := s.audit.Recent(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"logs":    entries,
	})
}

func (s *RiskServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := models.SystemStatus{
		Directories: map[string]bool{
			"data":   dirExists(s.cfg.DataDir),
			"models": dirExists(s.cfg.ModelsDir),
			"logs":   dirExists(s.cfg.LogsDir),
		},
		Files: map[string]bool{
			"model_ready":    fileExists(s.cfg.ModelPath),
			"model_loaded":   s.loader.Loaded(),
			"meta_ready":     fileExists(s.cfg.MetaPath),
			"dataset_exists": fileExists(s.cfg.RawDataPath),
		},
	}

	if meta, err := model.LoadMetadata(s.cfg.MetaPath); err == nil {
		status.ModelSummary = &models.ModelSummary{
			Accuracy:  strconv.FormatFloat(meta.AccuracyCV*100, 'f', 2, 64) + "%",
			Date:      meta.TrainingDate,
			Algorithm: meta.Algorithm,
		}
	}

	writeJSON(w, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.WithError(err).Error("failed to encode response")
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
