package handler

import (
	"errors"
	"net/http"
	"strconv"

	"project-manager/internal/api"
	"project-manager/internal/message"
	"project-manager/internal/service"

	"github.com/labstack/echo/v4"
)

// RespondError 依 service 錯誤種類決定狀態碼；未知錯誤記錄後回傳 500
func RespondError(c echo.Context, msgs *message.Catalog, err error) error {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return c.JSON(statusFor(svcErr.Kind), api.ErrorResponse{Error: msgs.Get(svcErr.Key)})
	}
	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msgs.Get(message.Internal)})
}

func statusFor(kind error) int {
	switch kind {
	case service.ErrNotFound:
		return http.StatusNotFound
	case service.ErrConflict, service.ErrBadRequest:
		// 重複的 email 對外回 400
		return http.StatusBadRequest
	case service.ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Fail 以訊息表內容回傳指定狀態碼
func Fail(c echo.Context, msgs *message.Catalog, status int, key message.Key) error {
	return c.JSON(status, api.ErrorResponse{Error: msgs.Get(key)})
}

// PathID 解析路徑上的正整數 id；無法解析的 id 視為不存在
func PathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// BindAndValidate 綁定 request body 並以 echo 的 validator 驗證
func BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
