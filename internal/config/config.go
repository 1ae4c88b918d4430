package config

import "os"

// DriveConfig holds document-store settings.
type DriveConfig struct {
	// RootFolderID is the default root folder whose children are organized.
	// It can be overridden per request; if neither is present the run is
	// rejected before any store access.
	RootFolderID string
}

// AWSConfig holds settings for the secrets backend.
type AWSConfig struct {
	Region     string
	SecretName string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup and passed
// explicitly into constructors; core logic never reads the environment.
type AppConfig struct {
	Port  string
	Drive DriveConfig
	AWS   AWSConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "8080"), // default only for non-sensitive value
		Drive: DriveConfig{
			RootFolderID: getEnv("DRIVE_ROOT_FOLDER_ID", ""),
		},
		AWS: AWSConfig{
			Region:     getEnv("AWS_REGION", "us-east-1"),
			SecretName: getEnv("SECRET_NAME", "my-google-service-account"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
