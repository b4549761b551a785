package services

import (
	"collabotree_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	ProjectService      ProjectService
	FavoriteService     FavoriteService
	OrderService        OrderService
	ReviewService       ReviewService
	NotificationService NotificationService
	VerificationService VerificationService
	StatsService        StatsService
}

// NewServiceContainer собирает сервисы поверх контейнера репозиториев.
// Бэкенд (память или postgres) выбирается уровнем выше.
func NewServiceContainer(repos *repositories.Repositories) *ServiceContainer {
	views := newViewService(repos.Users, repos.Profiles, repos.Projects)

	return &ServiceContainer{
		AuthService:         NewAuthService(repos.Users, repos.Profiles),
		ProjectService:      NewProjectService(repos.Projects, views),
		FavoriteService:     NewFavoriteService(repos.Favorites, views),
		OrderService:        NewOrderService(repos.Orders, repos.Projects, views),
		ReviewService:       NewReviewService(repos.Reviews, repos.Orders, repos.Projects),
		NotificationService: NewNotificationService(repos.Notifications),
		VerificationService: NewVerificationService(repos.Profiles, repos.Notifications, repos.AuditLogs, views),
		StatsService:        NewStatsService(repos.Users, repos.Profiles, repos.Projects, repos.Orders, repos.Favorites),
	}
}
