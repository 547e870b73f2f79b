package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config структура конфигурации
type Config struct {
	Port             string        `yaml:"port"`
	AppEnv           string        `yaml:"app_env"`
	TelegramBotToken string        `yaml:"telegram_bot_token"`
	JWTSecret        string        `yaml:"jwt_secret"`
	InitDataTTL      time.Duration `yaml:"init_data_ttl"`
	GuarantorFee     int           `yaml:"guarantor_fee"`
	DefaultLocale    string        `yaml:"default_locale"`
	Storage          StorageConfig `yaml:"storage"`
}

// StorageConfig описывает key-value хранилище объявлений и обменов
type StorageConfig struct {
	Driver    string         `yaml:"driver"` // memory, postgres, sqlite, redis
	Namespace string         `yaml:"namespace"`
	Database  DatabaseConfig `yaml:"database"`
	SQLiteDSN string         `yaml:"sqlite_dsn"`
	Redis     RedisConfig    `yaml:"redis"`
}

// DatabaseConfig содержит конфигурацию базы данных
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// RedisConfig содержит адрес и учётные данные Redis
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// URL формирует строку подключения к базе данных
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Port:          "8080",
		AppEnv:        "production",
		InitDataTTL:   24 * time.Hour,
		GuarantorFee:  100,
		DefaultLocale: "ru",
		Storage: StorageConfig{
			Driver: "memory",
			Database: DatabaseConfig{
				Host:    "localhost",
				Port:    "5432",
				User:    "phoneswap_user",
				Name:    "phoneswap",
				SSLMode: "disable",
			},
			SQLiteDSN: "phoneswap.db",
			Redis:     RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// LoadConfig загружает конфигурацию: значения по умолчанию, затем config.yml, затем переменные из .env и окружения
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	cfg := Default()
	if err := loadFromYAML(getEnv("CONFIG_FILE", "config.yml"), cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromYAML накладывает значения из YAML-файла поверх cfg
func loadFromYAML(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("не удалось разобрать YAML конфигурацию: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.TelegramBotToken = getEnv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.DefaultLocale = getEnv("DEFAULT_LOCALE", cfg.DefaultLocale)

	if v, ok := os.LookupEnv("INIT_DATA_TTL_HOURS"); ok {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("недопустимый INIT_DATA_TTL_HOURS: %w", err)
		}
		cfg.InitDataTTL = time.Duration(hours) * time.Hour
	}
	if v, ok := os.LookupEnv("GUARANTOR_FEE"); ok {
		fee, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("недопустимый GUARANTOR_FEE: %w", err)
		}
		cfg.GuarantorFee = fee
	}

	st := &cfg.Storage
	st.Driver = getEnv("STORAGE_DRIVER", st.Driver)
	st.Namespace = getEnv("STORAGE_NAMESPACE", st.Namespace)
	st.SQLiteDSN = getEnv("SQLITE_DSN", st.SQLiteDSN)

	st.Database.Host = getEnv("PGHOST", st.Database.Host)
	st.Database.Port = getEnv("PGPORT", st.Database.Port)
	st.Database.User = getEnv("PGUSER", st.Database.User)
	st.Database.Password = getEnv("PGPASSWORD", st.Database.Password)
	st.Database.Name = getEnv("PGDATABASE", st.Database.Name)
	st.Database.SSLMode = getEnv("PGSSLMODE", st.Database.SSLMode)

	st.Redis.Addr = getEnv("REDIS_ADDR", st.Redis.Addr)
	st.Redis.Password = getEnv("REDIS_PASSWORD", st.Redis.Password)
	if v, ok := os.LookupEnv("REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("недопустимый REDIS_DB: %w", err)
		}
		st.Redis.DB = n
	}
	return nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.TelegramBotToken == "" || c.JWTSecret == "" {
		return errors.New("не заданы TELEGRAM_BOT_TOKEN или JWT_SECRET")
	}
	switch c.Storage.Driver {
	case "memory", "postgres", "sqlite", "redis":
	default:
		return fmt.Errorf("неизвестный STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.GuarantorFee < 0 {
		return fmt.Errorf("GUARANTOR_FEE не может быть отрицательным: %d", c.GuarantorFee)
	}
	return nil
}

// IsDevelopment сообщает, запущено ли приложение в режиме разработки
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// getEnv получает переменную окружения или использует дефолтное значение
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
