package repositories

import (
	"errors"

	"collabotree_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	// FindByIDs - батч-выборка для read-model слоя (обогащение ответов
	// без N+1). Отсутствующие id просто не попадают в карту.
	FindByIDs(ids []string) (map[string]*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(id string, update UserUpdate) (*models.User, error)
	CountByRole(role models.UserRole) (int64, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) FindByIDs(ids []string) (map[string]*models.User, error) {
	result := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []models.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		result[users[i].ID] = &users[i]
	}
	return result, nil
}

func (r *gormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) Create(user *models.User) error {
	normalizeNewUser(user)
	err := r.db.Create(user).Error
	if isDuplicateKey(err) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *gormUserRepository) Update(id string, update UserUpdate) (*models.User, error) {
	user, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.AvatarURL != nil {
		user.AvatarURL = update.AvatarURL
	}

	if err := r.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *gormUserRepository) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
