package middleware

import (
	"net/http"
	"strings"

	"project-manager/internal/api"
	"project-manager/internal/message"
	"project-manager/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var verifyAccessToken = service.VerifyAccessToken

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer token，成功後把 claims 放進 context
func RequireAuth(msgs *message.Catalog) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				c.Logger().Debugf("驗證失敗: %v", err)
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: msgs.Get(message.Unauthorized)})
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// OptionalAuth 沒有 Authorization header 時直接放行；有帶就必須有效
func OptionalAuth(msgs *message.Catalog) echo.MiddlewareFunc {
	required := RequireAuth(msgs)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withAuth := required(next)
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			return withAuth(c)
		}
	}
}

// ClaimsFrom 取出 RequireAuth 放入的 claims
func ClaimsFrom(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims.UserID != 0
}
