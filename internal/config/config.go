package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Content  ContentConfig  `mapstructure:"content"`
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Static   StaticConfig   `mapstructure:"static"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
	// Path is the SQLite database file; ":memory:" keeps everything in process.
	Path           string `mapstructure:"path" validate:"required_if=Driver sqlite"`
	ConnectRetries uint   `mapstructure:"connect_retries"`
}

type ContentConfig struct {
	RootDirectory         string `mapstructure:"root_directory"`
	StaticPrefix          string `mapstructure:"static_prefix" validate:"path_prefix"`
	DefaultLanguage       string `mapstructure:"default_language" validate:"required"`
	ChapterNumberFallback int    `mapstructure:"chapter_number_fallback" validate:"gte=1"`
	PartNumberFallback    int    `mapstructure:"part_number_fallback" validate:"gte=1"`
	PartNumbering         string `mapstructure:"part_numbering" validate:"oneof=offset sequential"`
	TxScope               string `mapstructure:"tx_scope" validate:"oneof=grade run"`
}

type ServerConfig struct {
	Port      int             `mapstructure:"port" validate:"gt=0,lte=65535"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig is only enforced when Redis is configured.
type RateLimitConfig struct {
	Requests      int `mapstructure:"requests" validate:"gte=0"`
	WindowSeconds int `mapstructure:"window_seconds" validate:"gte=0"`
}

// RedisConfig enables the catalog cache and the rate limiter when Addr is set.
type RedisConfig struct {
	Addr            string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db" validate:"gte=0"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

type StaticConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type LogConfig struct {
	Mode  string `mapstructure:"mode" validate:"oneof=development production"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dante")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "dante")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.path", "dante.db")
	v.SetDefault("database.connect_retries", 3)
	v.SetDefault("content.root_directory", "content")
	v.SetDefault("content.static_prefix", "/static/")
	v.SetDefault("content.default_language", "fa")
	v.SetDefault("content.chapter_number_fallback", 1)
	v.SetDefault("content.part_number_fallback", 1)
	v.SetDefault("content.part_numbering", "offset")
	v.SetDefault("content.tx_scope", "grade")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.rate_limit.requests", 120)
	v.SetDefault("server.rate_limit.window_seconds", 60)
	v.SetDefault("redis.cache_ttl_seconds", 300)
	v.SetDefault("log.mode", "development")
	v.SetDefault("log.level", "info")

	envBindings := map[string]string{
		"database.password":      "DB_PASSWORD",
		"content.root_directory": "CONTENT_ROOT",
		"redis.addr":             "REDIS_ADDR",
		"redis.password":         "REDIS_PASSWORD",
		"static.base_url":        "STATIC_BASE_URL",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
