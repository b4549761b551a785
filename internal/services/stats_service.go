package services

import (
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
	"collabotree_backend/internal/services/dto"

	"collabotree_backend/pkg/apperrors"
)

// StatsService - агрегаты для дашбордов. Считаются заново на каждый
// запрос; "активный" заказ - PENDING или PAID.
type StatsService interface {
	ForUser(userID string, role models.UserRole) (interface{}, error)
}

type StatsServiceImpl struct {
	userRepo     repositories.UserRepository
	profileRepo  repositories.ProfileRepository
	projectRepo  repositories.ProjectRepository
	orderRepo    repositories.OrderRepository
	favoriteRepo repositories.FavoriteRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	projectRepo repositories.ProjectRepository,
	orderRepo repositories.OrderRepository,
	favoriteRepo repositories.FavoriteRepository,
) StatsService {
	return &StatsServiceImpl{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		projectRepo:  projectRepo,
		orderRepo:    orderRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *StatsServiceImpl) ForUser(userID string, role models.UserRole) (interface{}, error) {
	switch role {
	case models.UserRoleStudent:
		return s.studentStats(userID)
	case models.UserRoleBuyer:
		return s.buyerStats(userID)
	case models.UserRoleAdmin:
		return s.adminStats()
	}
	return struct{}{}, nil
}

func (s *StatsServiceImpl) studentStats(userID string) (*dto.StudentStats, error) {
	projects, err := s.projectRepo.Find(repositories.ProjectFilter{OwnerID: userID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	orders, err := s.orderRepo.Find(repositories.OrderFilter{StudentID: userID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.StudentStats{
		TotalProjects: len(projects),
	}
	for _, p := range projects {
		if p.Status == models.ProjectStatusListed {
			stats.ActiveProjects++
		}
	}
	for _, o := range orders {
		if o.Status == models.OrderStatusPaid {
			stats.TotalEarnings += o.Amount
		}
		if activeOrder(o.Status) {
			stats.ActiveOrders++
		}
	}
	return stats, nil
}

func (s *StatsServiceImpl) buyerStats(userID string) (*dto.BuyerStats, error) {
	orders, err := s.orderRepo.Find(repositories.OrderFilter{BuyerID: userID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	favorites, err := s.favoriteRepo.FindByBuyer(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.BuyerStats{
		TotalPurchases: len(orders),
		TotalFavorites: len(favorites),
	}
	for _, o := range orders {
		if activeOrder(o.Status) {
			stats.ActivePurchases++
		}
		if o.Status == models.OrderStatusPaid {
			stats.TotalSpent += o.Amount
		}
	}
	return stats, nil
}

func (s *StatsServiceImpl) adminStats() (*dto.AdminStats, error) {
	totalStudents, err := s.userRepo.CountByRole(models.UserRoleStudent)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pending, err := s.profileRepo.FindPendingVerifications()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	projects, err := s.projectRepo.Find(repositories.ProjectFilter{})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	orders, err := s.orderRepo.Find(repositories.OrderFilter{})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.AdminStats{
		TotalStudents:        totalStudents,
		PendingVerifications: len(pending),
		TotalProjects:        len(projects),
	}
	for _, p := range projects {
		if p.Status == models.ProjectStatusListed {
			stats.ActiveProjects++
		}
	}
	for _, o := range orders {
		if o.Status == models.OrderStatusPaid {
			stats.MonthlyGMV += o.Amount
		}
	}
	return stats, nil
}

func activeOrder(status models.OrderStatus) bool {
	return status == models.OrderStatusPending || status == models.OrderStatusPaid
}
