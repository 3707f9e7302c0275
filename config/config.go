package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port      string `yaml:"port"`
		QRBaseURL string `yaml:"qrBaseURL"`
	} `yaml:"server"`
	Database struct {
		Host               string `yaml:"host"`
		Port               string `yaml:"port"`
		User               string `yaml:"user"`
		Password           string `yaml:"password"`
		Name               string `yaml:"name"`
		SSLMode            string `yaml:"sslMode"`
		PoolSize           int    `yaml:"poolSize"`
		MaxIdleConns       int    `yaml:"maxIdleConns"`
		ConnMaxLifetimeMin int    `yaml:"connMaxLifetimeMin"`
	} `yaml:"database"`
	Redis struct {
		Host          string `yaml:"host"` // empty disables the catalog cache
		Port          string `yaml:"port"`
		CatalogTTLSec int    `yaml:"catalogTTLSec"`
	} `yaml:"redis"`
	Kafka struct {
		Broker      string `yaml:"broker"` // empty disables order events
		OrdersTopic string `yaml:"ordersTopic"`
	} `yaml:"kafka"`
	Logging struct {
		Level    string `yaml:"level"`
		FilePath string `yaml:"filePath"`
	} `yaml:"logging"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = "3000"
	cfg.Server.QRBaseURL = "http://localhost:3000"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.Name = "foodfleet_db"
	cfg.Database.SSLMode = "disable"
	cfg.Database.PoolSize = 10
	cfg.Database.MaxIdleConns = 5
	cfg.Database.ConnMaxLifetimeMin = 60
	cfg.Redis.Port = "6379"
	cfg.Redis.CatalogTTLSec = 60
	cfg.Kafka.OrdersTopic = "orders"
	cfg.Logging.Level = "info"
	return cfg
}

// LoadDotEnv populates the process environment from a .env file when one exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("failed to load .env file: %v", err)
	}
}

// Load layers defaults, the optional YAML file at path and environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port must be set")
	}
	if cfg.Database.PoolSize <= 0 {
		return errors.New("database pool size must be > 0")
	}
	if cfg.Database.MaxIdleConns < 0 {
		return errors.New("database max idle connections must be >= 0")
	}
	if cfg.Redis.CatalogTTLSec <= 0 {
		return errors.New("catalog cache TTL must be > 0")
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.QRBaseURL, "QR_BASE_URL")

	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setInt(&cfg.Database.PoolSize, "DB_POOL_SIZE")
	setInt(&cfg.Database.MaxIdleConns, "DB_MAX_IDLE_CONNS")
	setInt(&cfg.Database.ConnMaxLifetimeMin, "DB_CONN_MAX_LIFETIME_MIN")

	setString(&cfg.Redis.Host, "REDIS_HOST")
	setString(&cfg.Redis.Port, "REDIS_PORT")
	setInt(&cfg.Redis.CatalogTTLSec, "CATALOG_CACHE_TTL_SEC")

	setString(&cfg.Kafka.Broker, "KAFKA_BROKER")
	setString(&cfg.Kafka.OrdersTopic, "KAFKA_ORDERS_TOPIC")

	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.FilePath, "LOG_FILE")
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setInt(dst *int, key string) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warnf("ignoring %s=%q: not an integer", key, value)
		return
	}
	*dst = n
}

func (c *Config) PostgresDSN() string {
	db := c.Database
	return "host=" + db.Host + " port=" + db.Port + " user=" + db.User +
		" password=" + db.Password + " dbname=" + db.Name + " sslmode=" + db.SSLMode
}

func (c *Config) CatalogTTL() time.Duration {
	return time.Duration(c.Redis.CatalogTTLSec) * time.Second
}

// MustInitPostgres opens the bounded pool and pings it once; an unreachable store stops the process.
func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	db.SetMaxOpenConns(cfg.Database.PoolSize)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetimeMin) * time.Minute)

	log.WithFields(log.Fields{
		"host":      cfg.Database.Host,
		"database":  cfg.Database.Name,
		"pool_size": cfg.Database.PoolSize,
	}).Info("Database connected successfully")
	return db
}

// MustInitRedis returns nil when no Redis host is configured.
func MustInitRedis(cfg *Config) *redis.Client {
	if cfg.Redis.Host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Host + ":" + cfg.Redis.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}

	return client
}

// Orders are published one at a time; the writer must not hold a message
// waiting for a batch to fill.
const (
	kafkaBatchTimeout = 10 * time.Millisecond
	kafkaWriteTimeout = 2 * time.Second
	kafkaMaxAttempts  = 3
)

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(cfg *Config) *kafka.Writer {
	if cfg.Kafka.Broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Broker),
		Topic:        cfg.Kafka.OrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: kafkaBatchTimeout,
		WriteTimeout: kafkaWriteTimeout,
		MaxAttempts:  kafkaMaxAttempts,
	}
}
