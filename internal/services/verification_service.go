package services

import (
	"encoding/json"

	"collabotree_backend/internal/logger"
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
	"collabotree_backend/internal/services/dto"

	"collabotree_backend/pkg/apperrors"
)

type VerificationService interface {
	PendingQueue() ([]dto.VerificationView, error)
	Verify(adminID, userID string, req *dto.VerifyStudentRequest) (*models.StudentProfile, error)
	SubmitID(studentID string) (*dto.VerifyIDResponse, error)
	AuditLogs(limit, offset int) ([]models.AuditLog, error)
}

type VerificationServiceImpl struct {
	profileRepo      repositories.ProfileRepository
	notificationRepo repositories.NotificationRepository
	auditLogRepo     repositories.AuditLogRepository
	views            *viewService
}

func NewVerificationService(
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
	auditLogRepo repositories.AuditLogRepository,
	views *viewService,
) VerificationService {
	return &VerificationServiceImpl{
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		auditLogRepo:     auditLogRepo,
		views:            views,
	}
}

// PendingQueue - очередь модерации: PENDING-профили с пользователями.
func (s *VerificationServiceImpl) PendingQueue() ([]dto.VerificationView, error) {
	profiles, err := s.profileRepo.FindPendingVerifications()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.views.verificationViews(profiles)
}

// Verify - решение админа: профиль обновляется, студенту пишется
// уведомление, действие попадает в журнал. Уведомление и журнал
// не блокируют решение - их сбои только логируются.
func (s *VerificationServiceImpl) Verify(adminID, userID string, req *dto.VerifyStudentRequest) (*models.StudentProfile, error) {
	profile, err := s.profileRepo.SetVerification(userID, req.Status, req.Notes)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "verification", "Student profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"status": req.Status,
		"notes":  req.Notes,
	})
	notification := &models.Notification{
		UserID:  userID,
		Type:    models.NotificationVerificationUpdate,
		Payload: payload,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.WithError(err).Error("failed to create verification notification")
	}

	metadata, _ := json.Marshal(map[string]interface{}{
		"status": req.Status,
		"notes":  req.Notes,
	})
	entry := &models.AuditLog{
		ActorID:    adminID,
		Action:     models.AuditActionVerifyStudent,
		EntityType: "student_profile",
		EntityID:   userID,
		Metadata:   metadata,
	}
	if err := s.auditLogRepo.Create(entry); err != nil {
		logger.WithError(err).Error("failed to write audit log entry")
	}

	return profile, nil
}

// SubmitID - мок загрузки студенческого билета: реального файла и
// OCR нет, профиль получает фиктивный URL документа и возвращается
// в статус PENDING.
func (s *VerificationServiceImpl) SubmitID(studentID string) (*dto.VerifyIDResponse, error) {
	idDocURL := "mock-document-url.jpg"
	pending := models.VerificationPending
	update := repositories.StudentProfileUpdate{
		IDDocURL:           &idDocURL,
		VerificationStatus: &pending,
	}
	if _, err := s.profileRepo.UpdateStudentProfile(studentID, update); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "verification", "Student profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.VerifyIDResponse{
		Message: "ID document uploaded successfully",
		OCRData: dto.OCRData{
			Name:       "Extracted Name",
			StudentID:  "STU-2024-123456",
			University: "Extracted University",
			Confidence: 0.87,
		},
	}, nil
}

// AuditLogs - журнал действий админов, новые сверху.
func (s *VerificationServiceImpl) AuditLogs(limit, offset int) ([]models.AuditLog, error) {
	entries, err := s.auditLogRepo.Find(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}
