// Package config 從 .env 與環境變數組出服務設定
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DatabaseConfig 對應 DB_HOST、DB_PORT、DB_NAME、DB_USER、DB_PASSWORD
type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
}

// URL 回傳 pgx 與 golang-migrate 皆可使用的 postgres 連線字串
func (dc DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(dc.User, dc.Password),
		Host:     fmt.Sprintf("%s:%d", dc.Host, dc.Port),
		Path:     "/" + dc.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type Config struct {
	Database DatabaseConfig
	// DatabaseURL 非空時覆寫 Database 組出的連線字串
	DatabaseURL    string
	Redis          RedisConfig
	HTTPAddr       string
	WorkerCount    int
	Locale         string
	RateLimitRPS   float64
	RateLimitBurst int
}

// DSN 回傳實際使用的資料庫連線字串
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.Database.URL()
}

var loadDotenv = func() error { return godotenv.Load() }

// Load 讀取 .env (檔案不存在時略過) 後解析環境變數並套用預設值
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("載入 .env 失敗: %w", err)
	}

	dbPort, err := envInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	redisDB, err := envInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	workers, err := envInt("WORKER_COUNT", 1)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %d", workers)
	}
	burst, err := envInt("RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}
	rps := 5.0
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("無效的 RATE_LIMIT_RPS: %v", err)
		}
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     env("DB_HOST", "localhost"),
			Port:     dbPort,
			Name:     env("DB_NAME", "project_manager"),
			User:     env("DB_USER", "postgres"),
			Password: env("DB_PASSWORD", "postgres"),
		},
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		WorkerCount:    workers,
		Locale:         env("APP_LOCALE", "es"),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}
