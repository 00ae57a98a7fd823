package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"nutritrack/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port string

	DBDriver   string // "postgres" | "sqlite" | "memory"
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	SQLitePath string

	JWTSecret string

	NutrientSource string // "table" | "edamam"
	EdamamAppID    string
	EdamamAppKey   string

	Goals           models.Nutrients
	FoodCatalogPath string
	CORSOrigins     []string

	AWSRegion   string
	SNSTopicARN string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := Config{
		Port:            getEnv("PORT", "5000"),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		SQLitePath:      getEnv("SQLITE_PATH", "nutritrack.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		NutrientSource:  strings.ToLower(getEnv("NUTRIENT_SOURCE", "table")),
		EdamamAppID:     os.Getenv("EDAMAM_APP_ID"),
		EdamamAppKey:    os.Getenv("EDAMAM_APP_KEY"),
		Goals:           GoalsFromEnv(),
		FoodCatalogPath: os.Getenv("FOOD_CATALOG_PATH"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		SNSTopicARN:     os.Getenv("SNS_TOPIC_ARN"),
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
	return cfg
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// InitDB opens the configured database and migrates every model.
func InitDB(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.MealFood{},
		&models.DailyProgress{},
		&models.Alert{},
		&models.NutrientReference{},
	)
	if err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Printf("ignoring invalid %s=%q", key, v)
		return fallback
	}
	return f
}
