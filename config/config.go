package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	DbHost               string
	DbUser               string
	DbPassword           string
	DbName               string
	DbPort               int
	DbSSLMode            string
	AppPort              int
	PlacesAPIKey         string
	PlacesBaseURL        string
	JWTSecret            string
	PlaceCacheTTLSeconds int
}

var (
	lock      = &sync.Mutex{}
	appConfig *AppConfig
)

func GetConfig() (*AppConfig, error) {
	if appConfig != nil {
		return appConfig, nil
	}

	lock.Lock()
	defer lock.Unlock()

	if appConfig != nil {
		return appConfig, nil
	}

	appConfig, err := initConfig()
	return appConfig, err
}

func initConfig() (*AppConfig, error) {
	var finalConfig AppConfig

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetConfigName("app.config")
	viper.SetConfigType("json")
	err := viper.ReadInConfig()
	if err != nil {
		finalConfig.AppPort = getEnvIntOrDefault("APP_PORT", 8080)
		finalConfig.DbHost = getEnvOrDefault("DB_HOST", "postgres")
		finalConfig.DbPort = getEnvIntOrDefault("DB_PORT", 5432)
		finalConfig.DbUser = getEnvOrDefault("DB_USER", "postgres")
		finalConfig.DbPassword = getEnvOrDefault("DB_PASSWORD", "1")
		finalConfig.DbName = getEnvOrDefault("DB_NAME", "foodfinder")
		finalConfig.DbSSLMode = getEnvOrDefault("DB_SSLMODE", "disable")
		finalConfig.PlacesAPIKey = getEnvOrDefault("GOOGLE_MAPS_API_KEY", "")
		finalConfig.PlacesBaseURL = getEnvOrDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place")
		finalConfig.JWTSecret = getEnvOrDefault("JWT_SECRET", "change-me")
		finalConfig.PlaceCacheTTLSeconds = getEnvIntOrDefault("PLACE_CACHE_TTL_SECONDS", 300)
		return &finalConfig, nil
	}
	finalConfig.AppPort = viper.GetInt("server.port")
	finalConfig.DbHost = viper.GetString("database.host")
	finalConfig.DbPort = viper.GetInt("database.port")
	finalConfig.DbUser = viper.GetString("database.username")
	finalConfig.DbPassword = viper.GetString("database.password")
	finalConfig.DbName = viper.GetString("database.dbname")
	finalConfig.DbSSLMode = viper.GetString("database.sslmode")
	finalConfig.PlacesAPIKey = viper.GetString("places.apikey")
	finalConfig.PlacesBaseURL = viper.GetString("places.baseurl")
	finalConfig.JWTSecret = viper.GetString("auth.jwtsecret")
	finalConfig.PlaceCacheTTLSeconds = viper.GetInt("places.cachettlseconds")

	fmt.Printf("Using config file: %s\n\n", viper.ConfigFileUsed())

	return &finalConfig, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
