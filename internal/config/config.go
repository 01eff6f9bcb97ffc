package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	AccessSecret  string `yaml:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret"`
	Issuer        string `yaml:"issuer"`
	AccessTTL     string `yaml:"access_ttl"`
	RefreshTTL    string `yaml:"refresh_ttl"`
}

type CodeConfig struct {
	MaxAttempts  int    `yaml:"max_attempts"`
	AttemptTTL   string `yaml:"attempt_ttl"`
	ResendWindow string `yaml:"resend_window"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Code     CodeConfig     `yaml:"code"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

// Config is the resolved runtime configuration. Secrets are injected into
// the token service and mailer from here; nothing below the config layer
// reads the environment.
type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTIssuer        string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration

	CodeMaxAttempts  int
	CodeAttemptTTL   time.Duration
	CodeResendWindow time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailFromName string

	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads config/config.yml and applies environment overrides.
func Load() (*Config, error) {
	return LoadFile("config/config.yml")
}

// LoadFile reads the given yaml file and applies environment overrides.
func LoadFile(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(file.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}
	refTTL, err := time.ParseDuration(file.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}
	attTTL, err := time.ParseDuration(file.Code.AttemptTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid code attempt TTL: %w", err)
	}
	resWnd, err := time.ParseDuration(file.Code.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid code resend window: %w", err)
	}

	return &Config{
		Port:    env("PORT", strconv.Itoa(file.App.Port)),
		GinMode: env("GIN_MODE", file.App.GinMode),

		DSN: env("DATABASE_DSN", file.Database.DSN),

		RedisAddr:     env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       envInt("REDIS_DB", file.Redis.DB),

		JWTAccessSecret:  env("ACCESS_TOKEN_SECRET", file.JWT.AccessSecret),
		JWTRefreshSecret: env("REFRESH_TOKEN_SECRET", file.JWT.RefreshSecret),
		JWTIssuer:        file.JWT.Issuer,
		AccessTTL:        accTTL,
		RefreshTTL:       refTTL,

		CodeMaxAttempts:  file.Code.MaxAttempts,
		CodeAttemptTTL:   attTTL,
		CodeResendWindow: resWnd,

		SMTPHost:     env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:     envInt("SMTP_PORT", file.SMTP.Port),
		SMTPUsername: env("SMTP_USERNAME", file.SMTP.Username),
		SMTPPassword: env("SMTP_PASSWORD", file.SMTP.Password),
		MailFrom:     env("MAIL_FROM", file.SMTP.From),
		MailFromName: file.SMTP.FromName,

		CasbinModelPath: file.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
