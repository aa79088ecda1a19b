package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	TransitionsPermissive = "permissive"
	TransitionsStrict     = "strict"
)

type Config struct {
	AppEnv  string
	AppPort string

	StorageDriver string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string

	RabbitMQURL   string
	OrderExchange string

	RestaurantName   string
	OrderTransitions string
	SeedData         bool

	RateLimit float64
	RateBurst int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:  os.Getenv("APP_ENV"),
		AppPort: getEnv("APP_PORT", "8080"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getEnv("DB_PORT", "5432"),

		RabbitMQURL:   os.Getenv("RABBITMQ_URL"),
		OrderExchange: getEnv("ORDER_EXCHANGE", "orders_exchange"),

		RestaurantName:   getEnv("RESTAURANT_NAME", "Mi Restaurante"),
		OrderTransitions: strings.ToLower(getEnv("ORDER_TRANSITIONS", TransitionsPermissive)),
		SeedData:         getEnvBool("SEED_DATA", true),

		RateLimit: getEnvFloat("RATE_LIMIT", 10),
		RateBurst: getEnvInt("RATE_BURST", 20),
	}
}

// Validate reports settings that would make the server unusable.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" {
			return errors.New("DB_HOST is required when STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER: %s", c.StorageDriver)
	}

	switch c.OrderTransitions {
	case TransitionsPermissive, TransitionsStrict:
	default:
		return fmt.Errorf("unknown ORDER_TRANSITIONS: %s", c.OrderTransitions)
	}

	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return errors.New("RATE_LIMIT and RATE_BURST must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return v
}
