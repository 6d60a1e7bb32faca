package handler

import (
	"context"
	"net/http"

	"project-manager/internal/api"
	"project-manager/internal/message"
	"project-manager/internal/model"

	"github.com/labstack/echo/v4"
)

// UserSnapshotter 由 *service.UserService 實作
type UserSnapshotter interface {
	DebugSnapshot(ctx context.Context) ([]model.User, string, error)
}

// @Summary     Debug user store
// @Description 診斷用：回傳使用者清單以及資料來源 (cache 或 database)
// @Tags        debug
// @Produce     json
// @Success     200 {object} api.DebugStoreResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /debug-store [get]
func DebugStoreHandler(users UserSnapshotter, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, source, err := users.DebugSnapshot(c.Request().Context())
		if err != nil {
			return RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.DebugStoreResponse{
			Source: source,
			Count:  len(list),
			Users:  api.NewUserResponses(list),
		})
	}
}
