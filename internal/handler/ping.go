package handler

import (
	"net/http"

	"project-manager/internal/api"
	"project-manager/internal/cache"
	"project-manager/internal/database"

	"github.com/labstack/echo/v4"
)

// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			c.Logger().Errorf("database ping: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database unhealthy"})
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			c.Logger().Errorf("redis ping: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "pong"})
	}
}
