package services

import (
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"

	"collabotree_backend/pkg/apperrors"
)

type NotificationService interface {
	List(userID string) ([]models.Notification, error)
	MarkRead(userID, notificationID string) (*models.Notification, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) List(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

// MarkRead - отметить прочитанным можно только свое уведомление.
// Чужой id неотличим от несуществующего.
func (s *NotificationServiceImpl) MarkRead(userID, notificationID string) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if notification.UserID != userID {
		return nil, apperrors.ErrNotFound(repositories.ErrNotificationNotFound, "notification", "Notification not found")
	}

	updated, err := s.notificationRepo.MarkRead(notificationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}
