package audit

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PredictionModel struct {
	ID          string            `gorm:"primaryKey;column:id"`
	Input       datatypes.JSONMap `gorm:"column:input"`
	Label       string            `gorm:"column:prediction_label"`
	Probability float64           `gorm:"column:probability_percent"`
	RiskLevel   string            `gorm:"column:risk_level"`
	CreatedAt   time.Time         `gorm:"column:created_at"`
}

func (PredictionModel) TableName() string {
	return "prediction_audit"
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&PredictionModel{})
}

func (r *Repository) Save(ctx context.Context, rec *PredictionModel) error {
	rec.CreatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]PredictionModel, error) {
	var records []PredictionModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
