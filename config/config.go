package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Environment string
	ServerPort  string
	DBHost      string
	DBPort      int
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string

	// Remote stores
	GoogleCredentialsFile string
	SpreadsheetID         string
	UsersTab              string
	TimetableFolderID     string
	ExamTimetableFolderID string
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("PORT", "8080"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnvInt("DB_PORT", 5432),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "school_admin"),
		JWTSecret:   getEnv("JWT_SECRET", ""),

		GoogleCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", "credentials.json"),
		SpreadsheetID:         getEnv("SPREADSHEET_ID", ""),
		UsersTab:              getEnv("USERS_TAB", "Users"),
		TimetableFolderID:     getEnv("TIMETABLE_FOLDER_ID", ""),
		ExamTimetableFolderID: getEnv("EXAM_TIMETABLE_FOLDER_ID", ""),
	}

	for name, value := range map[string]string{
		"JWT_SECRET":               cfg.JWTSecret,
		"SPREADSHEET_ID":           cfg.SpreadsheetID,
		"TIMETABLE_FOLDER_ID":      cfg.TimetableFolderID,
		"EXAM_TIMETABLE_FOLDER_ID": cfg.ExamTimetableFolderID,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
