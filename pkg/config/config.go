package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string `validate:"required"`
	MongoURI      string `validate:"required"`
	MongoDatabase string `validate:"required"`
	UploadDir     string `validate:"required"`
	PublicPrefix  string `validate:"required"`
	MaxUploadSize int64  `validate:"gt=0"`
	Environment   string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "imagevault"),
		UploadDir:     getEnv("UPLOAD_DIR", "public/uploads"),
		PublicPrefix:  getEnv("PUBLIC_PREFIX", "/uploads"),
		MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 5000000), // 5MB limit
		Environment:   getEnv("ENVIRONMENT", "development"),
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
