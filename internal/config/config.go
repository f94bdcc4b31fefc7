package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App      *App
		Token    *Token
		DB       *DB
		HTTP     *HTTP
		Redis    *Redis
		Uploader *Uploader
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration string
	}

	// DB selects the key-value backing store. Driver is one of
	// "sqlite", "postgres" or "memory"; Path applies to sqlite only,
	// the host fields to postgres only.
	DB struct {
		Driver   string
		Path     string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	Uploader struct {
		Endpoint string
		Preset   string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: os.Getenv("TOKEN_DURATION"),
	}

	db := &DB{
		Driver:   os.Getenv("DB_DRIVER"),
		Path:     os.Getenv("DB_PATH"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}
	if db.Driver == "" {
		db.Driver = "sqlite"
	}
	if db.Path == "" {
		db.Path = "sparegold.db"
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	uploader := &Uploader{
		Endpoint: os.Getenv("UPLOAD_ENDPOINT"),
		Preset:   os.Getenv("UPLOAD_PRESET"),
	}

	return &Container{
		App:      app,
		Token:    token,
		DB:       db,
		HTTP:     http,
		Redis:    redis,
		Uploader: uploader,
	}, nil
}

// TokenDuration parses TOKEN_DURATION, falling back to 24h.
func (t *Token) TokenDuration() time.Duration {
	d, err := time.ParseDuration(t.Duration)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
