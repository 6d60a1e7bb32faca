// @title        Project Manager API
// @version      1.0
// @description  專案管理後端 API：使用者、活動與通知
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"project-manager/internal/cache"
	"project-manager/internal/config"
	"project-manager/internal/database"
	"project-manager/internal/message"
	appmw "project-manager/internal/middleware"
	"project-manager/internal/router"
	"project-manager/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "project-manager/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	dsn := cfg.DSN()

	db, err := newPgxPool(context.Background(), dsn)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()
	if err := db.Ping(context.Background()); err != nil {
		return fmt.Errorf("DB 無法連線: %w", err)
	}

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(dsn); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	limiter := appmw.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	stop := make(chan struct{})
	defer close(stop)
	go limiter.Run(stop)

	msgs := message.New(cfg.Locale)
	if msgs.Locale() != cfg.Locale {
		log.Printf("不支援的語系 %q，改用 %q", cfg.Locale, msgs.Locale())
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rdb,
		Tasks:    wp,
		Messages: msgs,
		Limiter:  limiter,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	log.Printf("listening on %s", cfg.HTTPAddr)
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
