package repository

import (
	"time"

	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity entry
func (r *ActivityRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// List retrieves the most recent entries, optionally filtered by kind
func (r *ActivityRepository) List(kind string, limit, offset int) ([]*models.ActivityLog, error) {
	var entries []*models.ActivityLog
	query := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	err := query.Find(&entries).Error
	return entries, err
}

// Count counts entries, optionally filtered by kind
func (r *ActivityRepository) Count(kind string) (int64, error) {
	var count int64
	query := r.db.Model(&models.ActivityLog{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	err := query.Count(&count).Error
	return count, err
}

// DeleteOlderThan deletes entries created before the cutoff
func (r *ActivityRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.ActivityLog{})
	return result.RowsAffected, result.Error
}
