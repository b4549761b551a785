package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		// Driver: "memory" (демо/тесты) или "postgres"
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Session struct {
		Secret     string `yaml:"secret"`
		CookieName string `yaml:"cookie_name"`
		// TTLHours - фиксированное время жизни сессии; не продлевается активностью
		TTLHours int `yaml:"ttl_hours"`
		// Store: "memory" или "redis"
		Store string `yaml:"store"`
	} `yaml:"session"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Seed struct {
		FirstAdminEmail    string `yaml:"first_admin_email"`
		FirstAdminPassword string `yaml:"first_admin_password"`
		// Demo заполняет витрину демонстрационными студентами и проектами
		Demo bool `yaml:"demo"`
	} `yaml:"seed"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию из config.yaml либо,
// если задан SESSION_SECRET, целиком из переменных окружения (режим теста/контейнера).
func LoadConfig() {
	var cfg Config

	sessionSecret := os.Getenv("SESSION_SECRET")

	if sessionSecret == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Session.Secret = sessionSecret
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Session.Store = os.Getenv("SESSION_STORE")
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Seed.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.Seed.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "memory"
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "collabotree.sid"
	}
	if cfg.Session.TTLHours == 0 {
		cfg.Session.TTLHours = 24
	}
	if cfg.Session.Store == "" {
		cfg.Session.Store = "memory"
	}
	if cfg.Session.Secret == "" {
		// Дефолт оригинального приложения; в проде обязателен свой секрет
		cfg.Session.Secret = "collabotree-secret"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
