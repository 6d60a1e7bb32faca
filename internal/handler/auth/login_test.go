package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"project-manager/internal/message"
	"project-manager/internal/middleware"
	"project-manager/internal/model"
	"project-manager/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type okValidator struct{ v *validator.Validate }

func (o okValidator) Validate(i any) error { return o.v.Struct(i) }

type stubService struct {
	authFn func(ctx context.Context, email, password string) (*model.User, error)
	getFn  func(ctx context.Context, id int) (*model.User, error)
}

func (s stubService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	return s.authFn(ctx, email, password)
}

func (s stubService) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return s.getFn(ctx, id)
}

func restore() {
	issueAccessToken = service.IssueAccessToken
	timeNow = time.Now
}

// helper to build echo context
func newLoginCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

var msgs = message.New("es")

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	e.Validator = okValidator{v: validator.New()}
	user := &model.User{ID: 3, Email: "a@x.com", Role: model.RoleManager}
	svc := stubService{authFn: func(_ context.Context, email, password string) (*model.User, error) {
		if email == "a@x.com" && password == "p" {
			return user, nil
		}
		return nil, &service.Error{Kind: service.ErrUnauthorized, Key: message.InvalidCredentials}
	}}

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		t.Setenv("JWT_SECRET", "s3cret")
		fixed := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		timeNow = func() time.Time { return fixed }

		ctx, rec := newLoginCtx(e, `{"email":"a@x.com","password":"p"}`)
		require.NoError(t, LoginHandler(svc, msgs)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"accessToken":"`)
		require.Contains(t, rec.Body.String(), `"expiresAt":"2025-05-02T00:00:00Z"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctx, rec := newLoginCtx(e, `{"email":"a@x.com","password":"wrong"}`)
		require.NoError(t, LoginHandler(svc, msgs)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Credenciales inválidas"}`, rec.Body.String())
	})

	t.Run("invalid body", func(t *testing.T) {
		ctx, rec := newLoginCtx(e, `{"email":"a@x.com"}`)
		require.NoError(t, LoginHandler(svc, msgs)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token error", func(t *testing.T) {
		t.Cleanup(restore)
		issueAccessToken = func(model.User, time.Duration) (string, error) { return "", errors.New("JWT_SECRET not set") }
		ctx, rec := newLoginCtx(e, `{"email":"a@x.com","password":"p"}`)
		require.NoError(t, LoginHandler(svc, msgs)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestMeHandler(t *testing.T) {
	e := echo.New()
	svc := stubService{getFn: func(_ context.Context, id int) (*model.User, error) {
		if id == 3 {
			return &model.User{ID: 3, Email: "a@x.com", PasswordHash: "hash"}, nil
		}
		return nil, &service.Error{Kind: service.ErrNotFound, Key: message.UserNotFound}
	}}
	newCtx := func(claims *service.CustomClaims) (echo.Context, *httptest.ResponseRecorder) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), rec)
		if claims != nil {
			c.Set(middleware.ContextUserKey, claims)
		}
		return c, rec
	}

	c, rec := newCtx(&service.CustomClaims{UserID: 3})
	require.NoError(t, MeHandler(svc, msgs)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"email":"a@x.com"`)
	require.NotContains(t, rec.Body.String(), "hash")

	c, rec = newCtx(&service.CustomClaims{UserID: 4})
	require.NoError(t, MeHandler(svc, msgs)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newCtx(nil)
	require.NoError(t, MeHandler(svc, msgs)(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
