// Package config handles configuration loading for the attendance service.
package config

import (
	"time"
)

// Config holds all configuration for the attendance service. It is built once
// at startup and passed by reference to every component that needs it.
type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	JWTSecret      string
	JWTAccessTTL   time.Duration
	JWTLoginTTL    time.Duration
	AllowedOrigins []string
	Port           string
	Environment    string
	SwaggerHost    string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DBHost:         GetEnvRequired("DB_HOST"),
		DBPort:         GetEnv("DB_PORT", "5432"),
		DBUser:         GetEnvRequired("DB_USER"),
		DBPassword:     GetEnvRequired("DB_PASSWORD"),
		DBName:         GetEnvRequired("DB_NAME"),
		DBSSLMode:      GetEnv("DB_SSLMODE", "disable"),
		RedisHost:      GetEnvRequired("REDIS_HOST"),
		RedisPort:      GetEnv("REDIS_PORT", "6379"),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		JWTSecret:      GetEnvRequired("JWT_SECRET"),
		JWTAccessTTL:   parseDuration(GetEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTLoginTTL:    parseDuration(GetEnv("JWT_LOGIN_EXPIRY", "30m"), 30*time.Minute),
		AllowedOrigins: GetEnvList("ALLOWED_ORIGINS", "http://localhost:5173"),
		Port:           GetEnv("PORT", "8000"),
		Environment:    GetEnv("ENVIRONMENT", "development"),
		SwaggerHost:    GetEnv("SWAGGER_HOST", ""),
	}
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
