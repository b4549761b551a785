package repositories

import (
	"collabotree_backend/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	FindByBuyer(buyerID string) ([]models.Favorite, error)
	// Create возвращает ErrDuplicateFavorite, если пара (buyer, project)
	// уже существует: апсерта нет, клиент получает явный отказ.
	Create(favorite *models.Favorite) error
	// Delete идемпотентен: отсутствие пары - не ошибка.
	Delete(buyerID, projectID string) error
	Exists(buyerID, projectID string) (bool, error)
}

type gormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &gormFavoriteRepository{db: db}
}

func (r *gormFavoriteRepository) FindByBuyer(buyerID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *gormFavoriteRepository) Create(favorite *models.Favorite) error {
	touchBase(&favorite.BaseModel)
	err := r.db.Create(favorite).Error
	if isDuplicateKey(err) {
		return ErrDuplicateFavorite
	}
	return err
}

func (r *gormFavoriteRepository) Delete(buyerID, projectID string) error {
	return r.db.
		Where("buyer_id = ? AND project_id = ?", buyerID, projectID).
		Delete(&models.Favorite{}).Error
}

func (r *gormFavoriteRepository) Exists(buyerID, projectID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("buyer_id = ? AND project_id = ?", buyerID, projectID).
		Count(&count).Error
	return count > 0, err
}
