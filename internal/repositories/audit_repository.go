package repositories

import (
	"collabotree_backend/internal/models"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(entry *models.AuditLog) error
	Find(limit, offset int) ([]models.AuditLog, error)
}

type gormAuditLogRepository struct {
	db *gorm.DB
}

func NewGormAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &gormAuditLogRepository{db: db}
}

func (r *gormAuditLogRepository) Create(entry *models.AuditLog) error {
	touchBase(&entry.BaseModel)
	return r.db.Create(entry).Error
}

func (r *gormAuditLogRepository) Find(limit, offset int) ([]models.AuditLog, error) {
	query := r.db.Model(&models.AuditLog{}).Order("created_at DESC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []models.AuditLog
	err := query.Find(&entries).Error
	return entries, err
}
