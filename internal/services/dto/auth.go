package dto

import "collabotree_backend/internal/models"

// RegisterRequest - запрос регистрации.
// Роль ADMIN недоступна при самостоятельной регистрации.
// Поля студента (university/studentId/program) обязательны при Role=STUDENT,
// это и учебный домен email проверяет AuthService.
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Name     string          `json:"name" validate:"required,min=1"`
	Role     models.UserRole `json:"role" validate:"required,oneof=STUDENT BUYER"`

	// Поля студента
	University string `json:"university,omitempty"`
	StudentID  string `json:"studentId,omitempty"`
	Program    string `json:"program,omitempty"`

	// Поля покупателя
	CompanyName *string `json:"companyName,omitempty"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - пользователь плюс профиль его роли.
// PasswordHash не сериализуется (json:"-" на модели).
type AuthResponse struct {
	User    *models.User `json:"user"`
	Profile interface{}  `json:"profile"`
}
