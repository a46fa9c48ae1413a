package config

import (
	"os"
	"strconv"

	"github.com/kamilarndt/fabmanage-api/internal/constants"
)

type Config struct {
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	GinMode         string
	Port            string
	SeedFile        string
	CapacityHours   float64
	AllowOvercommit bool
	WorkdayStart    string
	WorkdayEnd      string
	SlotMinutes     int
}

func Load() *Config {
	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "mysql"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "fabmanage"),
		DBPassword:      getEnv("DB_PASSWORD", "fabmanage"),
		DBName:          getEnv("DB_NAME", "fabmanage"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		Port:            getEnv("PORT", "8080"),
		SeedFile:        getEnv("SEED_FILE", ""),
		CapacityHours:   getEnvFloat("CAPACITY_HOURS", constants.DefaultCapacityHours),
		AllowOvercommit: getEnvBool("ALLOW_OVERCOMMIT", false),
		WorkdayStart:    getEnv("WORKDAY_START", constants.DefaultWorkdayStart),
		WorkdayEnd:      getEnv("WORKDAY_END", constants.DefaultWorkdayEnd),
		SlotMinutes:     getEnvInt("SLOT_MINUTES", constants.DefaultSlotMinutes),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
