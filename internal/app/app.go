package app

import (
	"fmt"
	"time"

	"collabotree_backend/internal/auth"
	"collabotree_backend/internal/config"
	"collabotree_backend/internal/handlers"
	"collabotree_backend/internal/logger"
	"collabotree_backend/internal/middleware"
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
	"collabotree_backend/internal/routes"
	"collabotree_backend/internal/seed"
	"collabotree_backend/internal/services"
	"collabotree_backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	repos := buildRepositories(cfg)

	if err := seedFirstAdmin(repos, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}
	if cfg.Seed.Demo {
		if err := seed.Demo(repos); err != nil {
			logger.Fatal("Failed to seed demo data", "error", err)
		}
	}

	ginRouter := SetupRouter(cfg, repos)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// buildRepositories выбирает бэкенд хранилища по конфигу.
func buildRepositories(cfg *config.Config) *repositories.Repositories {
	switch cfg.Database.Driver {
	case "postgres":
		logger.Info("Connecting to database...", "dsn", cfg.Database.DSN)
		gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
		if err != nil {
			logger.Fatal("Failed to connect to GORM", "error", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
		}
		if err = sqlDB.Ping(); err != nil {
			logger.Fatal("Database unavailable", "error", err)
		}
		if err := repositories.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to run migrations", "error", err)
		}
		logger.Info("Database connected")
		return repositories.NewGorm(gormDB)
	default:
		logger.Info("Using in-memory storage backend")
		return repositories.NewMemory()
	}
}

// buildSessionStore выбирает хранилище сессий по конфигу.
func buildSessionStore(cfg *config.Config) session.Store {
	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour

	if cfg.Session.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Using redis session store", "addr", cfg.Redis.Addr)
		return session.NewRedisStore(client, ttl)
	}

	logger.Info("Using in-memory session store")
	return session.NewMemoryStore(ttl)
}

// SetupRouter собирает gin-роутер со всем приложением.
// Экспортирован отдельно от Run, чтобы тесты гоняли HTTP-сценарии
// через httptest без реального листенера.
func SetupRouter(cfg *config.Config, repos *repositories.Repositories) *gin.Engine {
	sessionStore := buildSessionStore(cfg)
	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour

	serviceContainer := services.NewServiceContainer(repos)
	sessions := handlers.NewSessionManager(sessionStore, cfg.Session.Secret, cfg.Session.CookieName, ttl)
	appHandlers := handlers.NewAppHandlers(serviceContainer, sessions)

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.SessionMiddleware(sessionStore, cfg.Session.Secret, cfg.Session.CookieName))

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// seedFirstAdmin создает первого админа из конфига. Самостоятельная
// регистрация админов закрыта, это единственный путь их появления
// помимо демо-сида.
func seedFirstAdmin(repos *repositories.Repositories, cfg *config.Config) error {
	adminEmail := cfg.Seed.FirstAdminEmail
	adminPassword := cfg.Seed.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("First admin credentials are not configured. Skipping admin seeding.")
		return nil
	}

	if _, err := repos.Users.FindByEmail(adminEmail); err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
	}
	if err := repos.Users.Create(newAdmin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}
