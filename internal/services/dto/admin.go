package dto

import "collabotree_backend/internal/models"

// VerifyStudentRequest - решение админа по студенческому профилю.
type VerifyStudentRequest struct {
	Status models.VerificationStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Notes  *string                   `json:"notes,omitempty"`
}

// VerificationView - элемент очереди модерации: профиль плюс пользователь.
type VerificationView struct {
	models.StudentProfile
	User *models.User `json:"user"`
}

// OCRData - мок распознавания студенческого билета; реального OCR нет.
type OCRData struct {
	Name       string  `json:"name"`
	StudentID  string  `json:"studentId"`
	University string  `json:"university"`
	Confidence float64 `json:"confidence"`
}

type VerifyIDResponse struct {
	Message string  `json:"message"`
	OCRData OCRData `json:"ocrData"`
}
