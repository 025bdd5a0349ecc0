package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/diabd/platform/pkg/common/kafka"
	"github.com/diabd/platform/pkg/common/logger"
	"github.com/diabd/platform/pkg/common/models"
	"github.com/diabd/platform/pkg/features"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Service fans one prediction out to the CSV trail, the database, the recent
// cache and the event bus. Every sink is optional and every sink failure is
// warned about and swallowed; auditing must never fail a prediction.
type Service struct {
	csvLog   *CSVLog
	repo     *Repository
	cache    *Cache
	producer *kafka.Producer
}

func NewService(csvLog *CSVLog, repo *Repository, cache *Cache, producer *kafka.Producer) *Service {
	return &Service{csvLog: csvLog, repo: repo, cache: cache, producer: producer}
}

// Record persists one successful prediction. riskLevel is passed separately
// because the HTTP surface logs its own three-band tier.
func (s *Service) Record(ctx context.Context, raw models.RawInput, result models.PredictionResult, riskLevel string) {
	entry := models.AuditEntry{
		ID:                 uuid.New().String(),
		Input:              stringifyInput(raw),
		Label:              result.Label,
		ProbabilityPercent: result.ProbabilityPercent,
		RiskLevel:          riskLevel,
		Timestamp:          time.Now().Format("2006-01-02 15:04:05"),
	}

	if s.csvLog != nil {
		if err := s.csvLog.Append(entry); err != nil {
			logger.Log.WithError(err).Warn("prediction CSV log write failed")
		}
	}

	if s.repo != nil {
		rec := &PredictionModel{
			ID:          entry.ID,
			Input:       inputToJSONMap(entry.Input),
			Label:       entry.Label,
			Probability: entry.ProbabilityPercent,
			RiskLevel:   entry.RiskLevel,
		}
		if err := s.repo.Save(ctx, rec); err != nil {
			logger.Log.WithError(err).Warn("prediction audit row insert failed")
		}
	}

	if s.cache != nil {
		if err := s.cache.Push(ctx, entry); err != nil {
			logger.Log.WithError(err).Warn("prediction cache push failed")
		}
	}

	if s.producer != nil {
		payload := map[string]interface{}{
			"prediction_id":       entry.ID,
			"prediction_label":    entry.Label,
			"probability_percent": entry.ProbabilityPercent,
			"risk_level":          entry.RiskLevel,
			"input":               entry.Input,
		}
		if err := s.producer.PublishEvent(ctx, "prediction", "riskserver", payload); err != nil {
			logger.Log.WithError(err).Warn("prediction event publish failed")
		}
	}
}

// Recent returns the newest audit entries, preferring the cache and falling
// back to the CSV trail.
func (s *Service) Recent(ctx context.Context, n int) ([]models.AuditEntry, error) {
	if s.cache != nil {
		if entries, err := s.cache.Recent(ctx, n); err == nil && len(entries) > 0 {
			return entries, nil
		}
	}
	if s.csvLog != nil {
		return s.csvLog.Tail(n)
	}
	return []models.AuditEntry{}, nil
}

func stringifyInput(raw models.RawInput) map[string]string {
	out := make(map[string]string, len(features.FeatureOrder))
	for _, field := range features.FeatureOrder {
		if v, ok := raw[field]; ok && v != nil {
			out[field] = fmt.Sprintf("%v", v)
		} else {
			out[field] = ""
		}
	}
	return out
}

func inputToJSONMap(in map[string]string) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
