package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Quiz     Quiz
	LogLevel string
}

type Server struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
	UploadMaxBytes int64
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type Auth struct {
	JWTSecret string
}

// Quiz holds the per-complexity draw counts used when generating a quiz.
type Quiz struct {
	EasyCount     int
	ModerateCount int
	ComplexCount  int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("UPLOAD_MAX_BYTES", 5<<20)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("SQLITE_PATH", "quiz.db")
	viper.SetDefault("QUIZ_EASY_COUNT", 4)
	viper.SetDefault("QUIZ_MODERATE_COUNT", 4)
	viper.SetDefault("QUIZ_COMPLEX_COUNT", 2)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	config.Server.UploadMaxBytes = viper.GetInt64("UPLOAD_MAX_BYTES")

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.SQLitePath = viper.GetString("SQLITE_PATH")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Quiz.EasyCount = viper.GetInt("QUIZ_EASY_COUNT")
	config.Quiz.ModerateCount = viper.GetInt("QUIZ_MODERATE_COUNT")
	config.Quiz.ComplexCount = viper.GetInt("QUIZ_COMPLEX_COUNT")

	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty, every authenticated request will be rejected")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("db_host", config.Database.Host).
		Str("db_name", config.Database.Name).
		Interface("quiz", config.Quiz).
		Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
