package services

import (
	"encoding/json"
	"net/http"
	"testing"

	"collabotree_backend/internal/models"
	"collabotree_backend/internal/services/dto"

	"collabotree_backend/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVerificationService_Flow - решение по очереди: профиль, уведомление, журнал
func TestVerificationService_Flow(t *testing.T) {
	_, svc := newTestContainer()
	student := registerStudent(t, svc, "s@uni.edu")

	queue, err := svc.VerificationService.PendingQueue()
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, student.User.ID, queue[0].UserID)
	require.NotNil(t, queue[0].User)
	assert.Equal(t, "s@uni.edu", queue[0].User.Email)

	notes := "Docs look good"
	profile, err := svc.VerificationService.Verify("admin-id", student.User.ID, &dto.VerifyStudentRequest{
		Status: models.VerificationApproved,
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationApproved, profile.VerificationStatus)
	require.NotNil(t, profile.VerificationNotes)
	assert.Equal(t, "Docs look good", *profile.VerificationNotes)

	// Очередь пуста после решения
	queue, err = svc.VerificationService.PendingQueue()
	require.NoError(t, err)
	assert.Empty(t, queue)

	// Студенту дошло уведомление с payload решения
	notifications, err := svc.NotificationService.List(student.User.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationVerificationUpdate, notifications[0].Type)

	var payload struct {
		Status string  `json:"status"`
		Notes  *string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(notifications[0].Payload, &payload))
	assert.Equal(t, "APPROVED", payload.Status)

	// Решение записано в журнал
	entries, err := svc.VerificationService.AuditLogs(10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin-id", entries[0].ActorID)

	// Повторное решение без заметок стирает заметки предыдущего
	profile, err = svc.VerificationService.Verify("admin-id", student.User.ID, &dto.VerifyStudentRequest{
		Status: models.VerificationRejected,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationRejected, profile.VerificationStatus)
	assert.Nil(t, profile.VerificationNotes)
	assert.Equal(t, models.AuditActionVerifyStudent, entries[0].Action)
	assert.Equal(t, student.User.ID, entries[0].EntityID)
}

// TestVerificationService_VerifyUnknownStudent - чужой id дает 404
func TestVerificationService_VerifyUnknownStudent(t *testing.T) {
	_, svc := newTestContainer()

	_, err := svc.VerificationService.Verify("admin-id", "missing", &dto.VerifyStudentRequest{
		Status: models.VerificationApproved,
	})
	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

// TestVerificationService_SubmitID - мок загрузки возвращает профиль в PENDING
func TestVerificationService_SubmitID(t *testing.T) {
	repos, svc := newTestContainer()
	student := registerStudent(t, svc, "s@uni.edu")

	// Сначала одобряем, чтобы увидеть возврат в PENDING
	_, err := svc.VerificationService.Verify("admin-id", student.User.ID, &dto.VerifyStudentRequest{
		Status: models.VerificationApproved,
	})
	require.NoError(t, err)

	resp, err := svc.VerificationService.SubmitID(student.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ID document uploaded successfully", resp.Message)
	assert.Equal(t, "STU-2024-123456", resp.OCRData.StudentID)
	assert.InDelta(t, 0.87, resp.OCRData.Confidence, 0.001)

	profile, err := repos.Profiles.GetStudentProfile(student.User.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, profile.VerificationStatus)
	require.NotNil(t, profile.IDDocURL)
	assert.Equal(t, "mock-document-url.jpg", *profile.IDDocURL)
}

// TestNotificationService_MarkReadOwnership - чужое уведомление недоступно
func TestNotificationService_MarkReadOwnership(t *testing.T) {
	_, svc := newTestContainer()
	student := registerStudent(t, svc, "s@uni.edu")
	other := registerStudent(t, svc, "other@uni.edu")

	_, err := svc.VerificationService.Verify("admin-id", student.User.ID, &dto.VerifyStudentRequest{
		Status: models.VerificationRejected,
	})
	require.NoError(t, err)

	notifications, err := svc.NotificationService.List(student.User.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	// Чужой пользователь получает 404, не 403: существование чужих
	// уведомлений не раскрывается
	_, err = svc.NotificationService.MarkRead(other.User.ID, notifications[0].ID)
	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	read, err := svc.NotificationService.MarkRead(student.User.ID, notifications[0].ID)
	require.NoError(t, err)
	require.NotNil(t, read.ReadAt)
}

// TestReviewService_Rules - только покупатель, только PAID, один отзыв на заказ
func TestReviewService_Rules(t *testing.T) {
	_, svc := newTestContainer()
	student := registerStudent(t, svc, "s@uni.edu")
	buyer := registerBuyer(t, svc, "b@co.com")
	stranger := registerBuyer(t, svc, "x@co.com")
	project := createListedProject(t, svc, student.User.ID, "Reviewed", 100)

	order, err := svc.OrderService.Create(buyer.User.ID, project.ID)
	require.NoError(t, err)

	// Чужой заказ
	_, err = svc.ReviewService.Create(stranger.User.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 5})
	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)

	// Свой заказ
	comment := "Great work"
	review, err := svc.ReviewService.Create(buyer.User.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 5, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	// Второй отзыв на тот же заказ
	_, err = svc.ReviewService.Create(buyer.User.ID, &dto.CreateReviewRequest{OrderID: order.ID, Rating: 4})
	require.Error(t, err)
	appErr, _ = apperrors.AsAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	// Отзывы проекта собираются через его заказы
	reviews, err := svc.ReviewService.ListByProject(project.Slug)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, order.ID, reviews[0].OrderID)
}
