package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Env            string
	Port           string
	MongoURI       string
	JWTSecret      string
	ClientOrigin   string
	CloudinaryURL  string
	SendGridAPIKey string
	EmailSender    string
}

// Production reports whether the server runs in production mode. Error
// responses include stack traces only when this is false.
func (c Config) Production() bool {
	return c.Env == "production"
}

// Load reads the environment file for APP_ENV and builds the config.
// A missing env file is not fatal; real environment variables still apply.
func Load() (Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	if err := godotenv.Load(".env." + env); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found. Proceeding with environment variables.")
		}
	}

	cfg := Config{
		Env:            env,
		Port:           os.Getenv("PORT"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ClientOrigin:   os.Getenv("CLIENT_ORIGIN"),
		CloudinaryURL:  os.Getenv("CLOUDINARY_URL"),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailSender:    os.Getenv("EMAIL_SENDER"),
	}
	if cfg.Port == "" {
		cfg.Port = "4040"
	}
	if cfg.MongoURI == "" {
		return cfg, fmt.Errorf("MONGODB_URI is not set")
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}
