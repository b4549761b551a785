package services

import (
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
	"collabotree_backend/internal/services/dto"

	"collabotree_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(buyerID string, req *dto.CreateReviewRequest) (*models.Review, error)
	ListByProject(idOrSlug string) ([]models.Review, error)
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	orderRepo   repositories.OrderRepository
	projectRepo repositories.ProjectRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	orderRepo repositories.OrderRepository,
	projectRepo repositories.ProjectRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		orderRepo:   orderRepo,
		projectRepo: projectRepo,
	}
}

// Create - отзыв покупателя по собственному оплаченному заказу,
// не более одного на заказ.
func (s *ReviewServiceImpl) Create(buyerID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	order, err := s.orderRepo.FindByID(req.OrderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err, "review", "Order not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if order.BuyerID != buyerID {
		return nil, apperrors.NewForbiddenError("Not authorized")
	}
	if order.Status != models.OrderStatusPaid {
		return nil, apperrors.ErrInvalidStatus("review", "Order is not paid")
	}

	if _, err := s.reviewRepo.FindByOrderID(req.OrderID); err == nil {
		return nil, apperrors.ErrConflict("review", "Order already reviewed")
	} else if !apperrors.Is(err, repositories.ErrReviewNotFound) {
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return review, nil
}

// ListByProject - отзывы собираются через заказы проекта:
// прямой связи review → project в схеме нет.
func (s *ReviewServiceImpl) ListByProject(idOrSlug string) ([]models.Review, error) {
	project, err := s.projectRepo.FindByID(idOrSlug)
	if apperrors.Is(err, repositories.ErrProjectNotFound) {
		project, err = s.projectRepo.FindBySlug(idOrSlug)
	}
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "review", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	orders, err := s.orderRepo.Find(repositories.OrderFilter{ProjectID: project.ID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	orderIDs := make([]string, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	reviews, err := s.reviewRepo.FindByOrderIDs(orderIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}
