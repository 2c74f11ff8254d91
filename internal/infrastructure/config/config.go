package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Version  string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

// RedisConfig habilita o cache de usuários quando URL não está vazia
type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

// Load carrega as configurações do ambiente. Um arquivo .env é opcional
// e nunca sobrescreve variáveis já definidas.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env:     v.GetString("ENV"),
		Version: v.GetString("APP_VERSION"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			URL:      v.GetString("REDIS_URL"),
			CacheTTL: time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("LOCALES_DIR"),
			DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		},
	}

	if config.Database.MinConns > config.Database.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS (%d) must not exceed DB_MAX_CONNS (%d)",
			config.Database.MinConns, config.Database.MaxConns)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_VERSION", "0.0.1-SNAPSHOT")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "family_management")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("CACHE_TTL_SECONDS", 300)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("LOCALES_DIR", "./internal/infrastructure/i18n/locales")
	v.SetDefault("DEFAULT_LANGUAGE", "zh-CN")
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Addr retorna host:porta do servidor HTTP
func (s *ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}
