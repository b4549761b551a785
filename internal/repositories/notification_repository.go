package repositories

import (
	"errors"
	"time"

	"collabotree_backend/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)
	FindByUser(userID string) ([]models.Notification, error)
	MarkRead(id string) (*models.Notification, error)
}

type gormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(notification *models.Notification) error {
	touchBase(&notification.BaseModel)
	return r.db.Create(notification).Error
}

func (r *gormNotificationRepository) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *gormNotificationRepository) FindByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) MarkRead(id string) (*models.Notification, error) {
	notification, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	notification.ReadAt = &now
	if err := r.db.Save(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}
