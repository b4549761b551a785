package services

import (
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
	"collabotree_backend/internal/services/dto"

	"collabotree_backend/pkg/apperrors"
)

type OrderService interface {
	List(userID string, role models.UserRole, query *dto.OrderListQuery) ([]dto.OrderView, error)
	Create(buyerID, projectID string) (*models.Order, error)
}

type OrderServiceImpl struct {
	orderRepo   repositories.OrderRepository
	projectRepo repositories.ProjectRepository
	views       *viewService
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	projectRepo repositories.ProjectRepository,
	views *viewService,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		projectRepo: projectRepo,
		views:       views,
	}
}

// List - заказы глазами вызывающего: покупатель видит свои покупки,
// студент - свои продажи, админ - все.
func (s *OrderServiceImpl) List(userID string, role models.UserRole, query *dto.OrderListQuery) ([]dto.OrderView, error) {
	filter := repositories.OrderFilter{
		Status: models.OrderStatus(query.Status),
	}
	switch role {
	case models.UserRoleBuyer:
		filter.BuyerID = userID
	case models.UserRoleStudent:
		filter.StudentID = userID
	}

	orders, err := s.orderRepo.Find(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.views.orderViews(orders)
}

// Create фиксирует цену и владельца проекта на момент покупки.
// Платежного провайдера нет: заказ создается PENDING и тут же
// переводится в PAID, как делал оригинал вместо Stripe-чекаута.
func (s *OrderServiceImpl) Create(buyerID, projectID string) (*models.Order, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "order", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	order := &models.Order{
		ProjectID: projectID,
		BuyerID:   buyerID,
		StudentID: project.OwnerID,
		Amount:    project.Price,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	paid := models.OrderStatusPaid
	order, err = s.orderRepo.Update(order.ID, repositories.OrderUpdate{Status: &paid})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}
