package repositories

import "collabotree_backend/internal/models"

// Фильтры - конъюнкция (AND) предикатов равенства.
// Limit/Offset применяются после сортировки по убыванию created_at.

type ProjectFilter struct {
	OwnerID string
	Status  models.ProjectStatus
	Limit   int
	Offset  int
}

// ProjectSearchFilter сужает полнотекстовый поиск.
// Поиск всегда ограничен LISTED + PUBLIC проектами.
type ProjectSearchFilter struct {
	Category   string
	University string
	PriceRange string
}

type OrderFilter struct {
	BuyerID   string
	StudentID string
	ProjectID string
	Status    models.OrderStatus
}

// Частичные обновления: применяются только не-nil поля (shallow merge).

type UserUpdate struct {
	Name      *string
	AvatarURL *string
}

type StudentProfileUpdate struct {
	University         *string
	StudentID          *string
	Program            *string
	VerificationStatus *models.VerificationStatus
	IDDocURL           *string
	SelfieURL          *string
}

type ProjectUpdate struct {
	Title         *string
	Description   *string
	Skills        *[]string
	Tags          *[]string
	Price         *int
	Status        *models.ProjectStatus
	Visibility    *models.ProjectVisibility
	CoverImageURL *string
	DeliveryTime  *int
	Revisions     *int
}

type OrderUpdate struct {
	Status *models.OrderStatus
}
