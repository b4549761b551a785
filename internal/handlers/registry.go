package handlers

import (
	"collabotree_backend/internal/services"
	"collabotree_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProjectHandler      *ProjectHandler
	FavoriteHandler     *FavoriteHandler
	OrderHandler        *OrderHandler
	ReviewHandler       *ReviewHandler
	NotificationHandler *NotificationHandler
	VerificationHandler *VerificationHandler
	StatsHandler        *StatsHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов.
func NewAppHandlers(svc *services.ServiceContainer, sessions *SessionManager) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, svc.AuthService, sessions),
		ProjectHandler:      NewProjectHandler(base, svc.ProjectService, svc.ReviewService),
		FavoriteHandler:     NewFavoriteHandler(base, svc.FavoriteService),
		OrderHandler:        NewOrderHandler(base, svc.OrderService),
		ReviewHandler:       NewReviewHandler(base, svc.ReviewService),
		NotificationHandler: NewNotificationHandler(base, svc.NotificationService),
		VerificationHandler: NewVerificationHandler(base, svc.VerificationService),
		StatsHandler:        NewStatsHandler(base, svc.StatsService),
	}
}
