package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr         string
	MongoURI         string
	MongoDB          string
	RedisAddr        string
	RedisPass        string
	OTP_TTL          time.Duration
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	TwilioBaseURL    string
	GoogleClientID   string
	UploadDir        string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}
	ttl, err := time.ParseDuration(getEnv("OTP_TTL", "5m"))
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return Config{
		HTTPAddr:         getEnv("HTTP_ADDR", ":3000"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "prame"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:        getEnv("REDIS_PASS", ""),
		OTP_TTL:          ttl,
		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFrom:       getEnv("TWILIO_PHONE_NUMBER", ""),
		TwilioBaseURL:    getEnv("TWILIO_BASE_URL", "https://api.twilio.com"),
		GoogleClientID:   getEnv("GOOGLE_CLIENT_ID", ""),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
