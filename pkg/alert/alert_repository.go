package alert

import (
	"ReliefStock-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	AlertRepository interface {
		CreateAlert(ctx context.Context, alert *entities.Alert) error
		AlertExistsOn(ctx context.Context, itemID string, day time.Time) (bool, error)
		GetAlertByID(ctx context.Context, id string) (*entities.Alert, error)
		GetAlerts(ctx context.Context, acknowledged *bool, page, limit int) ([]*entities.Alert, int64, error)
		AcknowledgeAlert(ctx context.Context, id string) error
	}

	alertRepository struct {
		db *gorm.DB
	}
)

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) CreateAlert(ctx context.Context, alert *entities.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) AlertExistsOn(ctx context.Context, itemID string, day time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Alert{}).
		Where("item_id = ? AND alert_date = ?", itemID, day).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *alertRepository) GetAlertByID(ctx context.Context, id string) (*entities.Alert, error) {
	var alert entities.Alert
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Item.Donor").
		Where("id = ?", id).
		First(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// GetAlerts returns unexpired-stock alerts for the admin screen: only
// CRITICAL and HIGH severities, CRITICAL first, newest within each tier.
func (r *alertRepository) GetAlerts(ctx context.Context, acknowledged *bool, page, limit int) ([]*entities.Alert, int64, error) {
	var alerts []*entities.Alert
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.Alert{}).
		Joins("JOIN items ON items.id = alerts.item_id").
		Where("items.quantity > 0").
		Where("alerts.severity IN ?", []string{"CRITICAL", "HIGH"})

	if acknowledged != nil {
		query = query.Where("alerts.is_acknowledged = ?", *acknowledged)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Item").
		Preload("Item.Donor").
		Order("CASE alerts.severity WHEN 'CRITICAL' THEN 1 WHEN 'HIGH' THEN 2 ELSE 3 END, alerts.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&alerts).Error; err != nil {
		return nil, 0, err
	}

	return alerts, count, nil
}

func (r *alertRepository) AcknowledgeAlert(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Alert{}).
		Where("id = ?", id).
		Update("is_acknowledged", true).Error
}
