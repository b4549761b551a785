package repositories

import (
	"errors"

	"collabotree_backend/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	FindByID(id string) (*models.Order, error)
	Find(filter OrderFilter) ([]models.Order, error)
	Create(order *models.Order) error
	Update(id string, update OrderUpdate) (*models.Order, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) Find(filter OrderFilter) ([]models.Order, error) {
	query := r.db.Model(&models.Order{})

	if filter.BuyerID != "" {
		query = query.Where("buyer_id = ?", filter.BuyerID)
	}
	if filter.StudentID != "" {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var orders []models.Order
	err := query.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *gormOrderRepository) Create(order *models.Order) error {
	normalizeNewOrder(order)
	return r.db.Create(order).Error
}

func (r *gormOrderRepository) Update(id string, update OrderUpdate) (*models.Order, error) {
	order, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.Status != nil {
		order.Status = *update.Status
	}

	if err := r.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
