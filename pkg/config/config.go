package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	FirestoreProjectID      string
	MasterEmail             string
	UploadBaseURL           string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		FirestoreProjectID:      getEnv("FIRESTORE_PROJECT_ID", ""),
		MasterEmail:             getEnv("MASTER_EMAIL", ""),
		UploadBaseURL:           getEnv("UPLOAD_BASE_URL", "http://js94.kro.kr:518"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
