package repositories

import (
	"errors"

	"collabotree_backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByOrderID(orderID string) (*models.Review, error)
	// FindByOrderIDs - отзывы проекта собираются через его заказы.
	FindByOrderIDs(orderIDs []string) ([]models.Review, error)
}

type gormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) ReviewRepository {
	return &gormReviewRepository{db: db}
}

func (r *gormReviewRepository) Create(review *models.Review) error {
	touchBase(&review.BaseModel)
	return r.db.Create(review).Error
}

func (r *gormReviewRepository) FindByOrderID(orderID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *gormReviewRepository) FindByOrderIDs(orderIDs []string) ([]models.Review, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var reviews []models.Review
	err := r.db.
		Where("order_id IN ?", orderIDs).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
