package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramToken string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	DBDSN         string `envconfig:"DB_DSN" required:"true"`
	Environment   string `envconfig:"ENV" default:"development"`

	Redis     RedisConfig
	HTTP      HTTPConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Store     StoreConfig
	Scheduler SchedulerConfig
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type HTTPConfig struct {
	Port               string   `envconfig:"HTTP_PORT" default:"8080"`
	CORSAllowOrigins   []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	LoginRatePerMinute int      `envconfig:"LOGIN_RATE_PER_MINUTE" default:"10"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	// ChatID чат Telegram для дублирования уведомлений, 0 отключает
	ChatID int64 `envconfig:"ADMIN_CHAT_ID"`
}

// StoreConfig контакты салона для отправки бронирований
type StoreConfig struct {
	Phone  string `envconfig:"STORE_PHONE" default:"0555123456"`
	ChatID int64  `envconfig:"STORE_CHAT_ID"`
}

type SchedulerConfig struct {
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
	MigrationsDir string        `envconfig:"MIGRATIONS_DIR" default:"."`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	if cfg.Scheduler.SweepInterval <= 0 {
		return nil, fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", cfg.Scheduler.SweepInterval)
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
