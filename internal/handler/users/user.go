package users

import (
	"context"
	"net/http"
	"strconv"

	"project-manager/internal/api"
	"project-manager/internal/handler"
	"project-manager/internal/message"
	"project-manager/internal/model"
	"project-manager/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 由 *service.UserService 實作
type Service interface {
	CreateUser(ctx context.Context, in service.CreateUserInput) (*model.User, error)
	GetUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	UpdateUser(ctx context.Context, id int, in service.UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id int) error
	VerifyUserExists(ctx context.Context, email string) (bool, *model.User, error)
}

// NotificationLister 由 *service.NotificationService 實作
type NotificationLister interface {
	ListUserNotifications(ctx context.Context, userID int, unreadOnly bool) ([]model.Notification, error)
}

// @Summary     List users
// @Description 回傳所有使用者 (不含密碼)
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := svc.GetUsers(c.Request().Context())
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(users))
	}
}

// @Summary     Create a new user
// @Description 建立新帳號；Email 轉為小寫，重複時回傳 400
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}

		user, err := svc.CreateUser(c.Request().Context(), service.CreateUserInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
			Expertise: req.Expertise,
			Role:      model.Role(req.Role),
			PhotoURL:  req.PhotoURL,
		})
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// @Summary     Verify a user exists
// @Description 註冊前檢查 email 是否已被使用
// @Tags        users
// @Produce     json
// @Param       email query    string true "使用者 Email"
// @Success     200   {object} api.VerifyUserResponse
// @Failure     400   {object} api.ErrorResponse
// @Failure     500   {object} api.ErrorResponse
// @Router      /users/verify [get]
func VerifyUserHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		exists, user, err := svc.VerifyUserExists(c.Request().Context(), c.QueryParam("email"))
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		resp := api.VerifyUserResponse{Exists: exists}
		if user != nil {
			u := api.NewUserResponse(user)
			resp.User = &u
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [get]
func GetUserHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.UserNotFound)
		}
		user, err := svc.GetUserByID(c.Request().Context(), id)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Update a user by ID
// @Description 只更新有帶的欄位；密碼會重新雜湊
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "使用者 ID"
// @Param       body body     api.UpdateUserRequest true "要更新的欄位"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users/{id} [put]
func UpdateUserHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.UserNotFound)
		}
		var req api.UpdateUserRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}

		if req.ClearPhotoURL && req.PhotoURL != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}

		in := service.UpdateUserInput{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Password:      req.Password,
			Expertise:     req.Expertise,
			PhotoURL:      req.PhotoURL,
			ClearPhotoURL: req.ClearPhotoURL,
		}
		if req.Role != nil {
			role := model.Role(*req.Role)
			in.Role = &role
		}
		user, err := svc.UpdateUser(c.Request().Context(), id, in)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Delete a user by ID
// @Description 刪除使用者；使用者不存在時同樣回傳成功訊息
// @Tags        users
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.UserNotFound)
		}
		if err := svc.DeleteUser(c.Request().Context(), id); err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgs.Get(message.UserDeleted)})
	}
}

// @Summary     List a user's notifications
// @Tags        users
// @Produce     json
// @Param       id     path     int  true  "使用者 ID"
// @Param       unread query    bool false "只回傳未讀"
// @Success     200    {array}  model.Notification
// @Failure     400    {object} api.ErrorResponse
// @Failure     404    {object} api.ErrorResponse
// @Failure     500    {object} api.ErrorResponse
// @Router      /users/{id}/notifications [get]
func ListNotificationsHandler(svc NotificationLister, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.UserNotFound)
		}
		unreadOnly := false
		if v := c.QueryParam("unread"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
			}
			unreadOnly = b
		}
		list, err := svc.ListUserNotifications(c.Request().Context(), id, unreadOnly)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}
