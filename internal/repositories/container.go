package repositories

import (
	"fmt"
	"time"

	"collabotree_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repositories - контейнер всех репозиториев.
// Создается один раз на старте процесса и передается явно
// (не глобально): тесты получают изоляцию через свежий экземпляр.
type Repositories struct {
	Users         UserRepository
	Profiles      ProfileRepository
	Projects      ProjectRepository
	Orders        OrderRepository
	Favorites     FavoriteRepository
	Reviews       ReviewRepository
	Notifications NotificationRepository
	AuditLogs     AuditLogRepository
}

// NewGorm собирает контейнер поверх *gorm.DB (postgres).
func NewGorm(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewGormUserRepository(db),
		Profiles:      NewGormProfileRepository(db),
		Projects:      NewGormProjectRepository(db),
		Orders:        NewGormOrderRepository(db),
		Favorites:     NewGormFavoriteRepository(db),
		Reviews:       NewGormReviewRepository(db),
		Notifications: NewGormNotificationRepository(db),
		AuditLogs:     NewGormAuditLogRepository(db),
	}
}

// NewMemory собирает контейнер поверх общего in-memory стора.
// Контракт (сортировка, дефолты, уникальность) идентичен postgres-бэкенду.
func NewMemory() *Repositories {
	db := newMemStore()
	return &Repositories{
		Users:         &memUserRepository{db},
		Profiles:      &memProfileRepository{db},
		Projects:      &memProjectRepository{db},
		Orders:        &memOrderRepository{db},
		Favorites:     &memFavoriteRepository{db},
		Reviews:       &memReviewRepository{db},
		Notifications: &memNotificationRepository{db},
		AuditLogs:     &memAuditLogRepository{db},
	}
}

// AutoMigrate создает схему для postgres-бэкенда.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.BuyerProfile{},
		&models.Project{},
		&models.Order{},
		&models.Favorite{},
		&models.Review{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// touchBase назначает ID и CreatedAt, если они не заданы.
// Генерация на стороне приложения, чтобы оба бэкенда вели себя одинаково.
func touchBase(base *models.BaseModel) {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = time.Now()
	}
}
