package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Auth       Auth
	ImageStore ImageStore
	Fetch      Fetch
	LogLevel   string
}

type Server struct {
	Port           string
	Mode           string
	AllowOrigins   []string
	MaxUploadBytes int64
}

type Database struct {
	Driver   string // "postgres" or "mysql"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Auth struct {
	JWTSecret         string
	TokenTTL          time.Duration
	BootstrapUsername string
	BootstrapPassword string
}

type ImageStore struct {
	Provider string // "cloudinary" or "gcs"
	Folder   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	GCSBucketName      string
	GCSCredentialsFile string
}

type Fetch struct {
	Timeout time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("JWT_TTL", "24h")
	viper.SetDefault("IMAGE_STORE", "cloudinary")
	viper.SetDefault("UPLOAD_FOLDER", "chrono_scribe_submissions")
	viper.SetDefault("FETCH_TIMEOUT", "30s")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Server.AllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))
	config.Server.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTL = viper.GetDuration("JWT_TTL")
	config.Auth.BootstrapUsername = viper.GetString("MODERATOR_USERNAME")
	config.Auth.BootstrapPassword = viper.GetString("MODERATOR_PASSWORD")

	config.ImageStore.Provider = viper.GetString("IMAGE_STORE")
	config.ImageStore.Folder = viper.GetString("UPLOAD_FOLDER")
	config.ImageStore.CloudinaryCloudName = viper.GetString("CLOUDINARY_CLOUD_NAME")
	config.ImageStore.CloudinaryAPIKey = viper.GetString("CLOUDINARY_API_KEY")
	config.ImageStore.CloudinaryAPISecret = viper.GetString("CLOUDINARY_API_SECRET")
	config.ImageStore.GCSBucketName = viper.GetString("GCS_BUCKET_NAME")
	config.ImageStore.GCSCredentialsFile = viper.GetString("GCS_CREDENTIALS_FILE")

	config.Fetch.Timeout = viper.GetDuration("FETCH_TIMEOUT")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("db_host", config.Database.Host).
		Str("image_store", config.ImageStore.Provider).
		Dur("fetch_timeout", config.Fetch.Timeout).
		Msg("Config loaded")
	return &config, nil
}

// Validate reports settings the application cannot start with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		errs = append(errs, fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver))
	}
	switch c.ImageStore.Provider {
	case "cloudinary", "gcs":
	default:
		errs = append(errs, fmt.Errorf("unsupported IMAGE_STORE %q", c.ImageStore.Provider))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("unsupported GIN_MODE %q", c.Server.Mode))
	}
	if c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
