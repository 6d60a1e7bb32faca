// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"net/http"
	"time"

	"project-manager/internal/api"
	"project-manager/internal/handler"
	"project-manager/internal/message"
	"project-manager/internal/middleware"
	"project-manager/internal/model"
	"project-manager/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 由 *service.UserService 實作
type Service interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
}

var (
	issueAccessToken = service.IssueAccessToken
	timeNow          = time.Now
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}

		user, err := svc.Authenticate(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}

		// 發行存取令牌
		expiresAt := timeNow().Add(service.AccessTokenTTL)
		token, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token, ExpiresAt: expiresAt})
	}
}

// MeHandler 回傳 token 所屬的使用者
// @Summary     Get current user info
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return handler.Fail(c, msgs, http.StatusUnauthorized, message.Unauthorized)
		}
		user, err := svc.GetUserByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
