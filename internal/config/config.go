// Package config предоставляет структуры и функции для парсинга и загрузки конфига
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/crypto/bcrypt"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string   `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string   `yaml:"storage_connection_string" env:"STORAGE_URL" env-required:"true"`
	MigrationsPath          string   `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
	CORSOrigins             []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	Hashing                 `yaml:"hashing"`
	RedisConnection         `yaml:"redis_connection"`
	RabbitMQ                `yaml:"rabbitmq"`
	Uploads                 `yaml:"uploads"`
	SMTP                    `yaml:"smtp"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8001"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"168h"`
}

// Hashing настройки хеширования паролей
type Hashing struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кэш.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
	CacheTTL     time.Duration `yaml:"cache_ttl" env-default:"5m"`
}

// RabbitMQ настройки брокера. Пустой URL отключает публикацию событий.
type RabbitMQ struct {
	RabbitMQURL  string `yaml:"url" env:"RABBITMQ_URL"`
	ContactQueue string `yaml:"contact_queue" env-default:"contact.created"`
}

// Uploads настройки хранилища загруженных файлов.
// Backend "local" пишет в Dir, "s3" в бакет S3-совместимого хранилища.
type Uploads struct {
	Backend     string `yaml:"backend" env:"UPLOADS_BACKEND" env-default:"local"`
	Dir         string `yaml:"dir" env:"UPLOADS_DIR" env-default:"uploads"`
	MaxSizeMB   int64  `yaml:"max_size_mb" env-default:"20"`
	S3Endpoint  string `yaml:"s3_endpoint" env:"S3_ENDPOINT"`
	S3Region    string `yaml:"s3_region" env:"S3_REGION" env-default:"us-east-1"`
	S3Bucket    string `yaml:"s3_bucket" env:"S3_BUCKET"`
	S3AccessKey string `yaml:"s3_access_key" env:"S3_ACCESS_KEY"`
	S3SecretKey string `yaml:"s3_secret_key" env:"S3_SECRET_KEY"`
	S3PublicURL string `yaml:"s3_public_url" env:"S3_PUBLIC_URL"`
}

// SMTP настройки отправки уведомлений о новых обращениях
type SMTP struct {
	SMTPHost     string `yaml:"host" env:"SMTP_HOST"`
	SMTPPort     string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	SMTPUser     string `yaml:"user" env:"SMTP_USER"`
	SMTPPassword string `yaml:"password" env:"SMTP_PASSWORD"`
	SMTPFrom     string `yaml:"from" env:"SMTP_FROM"`
	SMTPInbox    string `yaml:"inbox" env:"SMTP_INBOX"`
}

// Validate проверяет значения, без которых сервис не должен стартовать.
func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("jwt secret key is not set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	switch c.Backend {
	case "local":
	case "s3":
		if c.S3Bucket == "" {
			return errors.New("s3 bucket is not set")
		}
	default:
		return fmt.Errorf("unknown uploads backend %q", c.Backend)
	}
	return nil
}

// Load читает конфиг из файла path, накладывает переменные окружения и проверяет результат.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, path)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad функция для загрузки конфига по пути из CONFIG_PATH, при ошибке завершает процесс
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}
	return cfg
}

// String печатает конфиг без секретов.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  JWTSecretKey: %s\n"+
			"  TokenTTL: %s\n"+
			"Hashing:\n"+
			"  BcryptCost: %d\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"Uploads:\n"+
			"  Backend: %s\n"+
			"  Dir: %s\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		mask(c.JWTSecretKey),
		c.TokenTTL,
		c.BcryptCost,
		c.AddressRedis,
		c.DB,
		c.Backend,
		c.Dir,
	)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
