package dto

import "collabotree_backend/internal/models"

// CreateProjectRequest - создание проекта студентом.
// Статус при создании ограничен DRAFT/LISTED; остальные статусы
// достижимы только через PATCH.
type CreateProjectRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Description  string   `json:"description" validate:"required,min=1"`
	Skills       []string `json:"skills"`
	Tags         []string `json:"tags"`
	Price        int      `json:"price" validate:"required,min=1"`
	DeliveryTime int      `json:"deliveryTime" validate:"required,min=1"`
	Revisions    *int     `json:"revisions,omitempty" validate:"omitempty,min=0"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=DRAFT LISTED"`
}

// UpdateProjectRequest - частичное обновление: применяются
// только переданные поля.
type UpdateProjectRequest struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Description   *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Skills        *[]string `json:"skills,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Price         *int      `json:"price,omitempty" validate:"omitempty,min=1"`
	Status        *string   `json:"status,omitempty" validate:"omitempty,oneof=DRAFT LISTED HIRED IN_PROGRESS DELIVERED CLOSED"`
	Visibility    *string   `json:"visibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
	CoverImageURL *string   `json:"coverImageUrl,omitempty"`
	DeliveryTime  *int      `json:"deliveryTime,omitempty" validate:"omitempty,min=1"`
	Revisions     *int      `json:"revisions,omitempty" validate:"omitempty,min=0"`
}

// ProjectListQuery - параметры GET /api/projects.
// search переключает ветку поиска (LISTED+PUBLIC); без него
// отдается плоский список (дашборды видят и черновики).
type ProjectListQuery struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	University string `form:"university"`
	PriceRange string `form:"priceRange"`
	OwnerID    string `form:"ownerId"`
	Status     string `form:"status"`
	Limit      int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int    `form:"offset" validate:"omitempty,min=0"`
}

// ProjectView - проект, обогащенный владельцем и его студенческим
// профилем (форма ответа оригинального API).
type ProjectView struct {
	models.Project
	Owner          *models.User           `json:"owner"`
	StudentProfile *models.StudentProfile `json:"studentProfile"`
}
