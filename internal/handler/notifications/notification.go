package notifications

import (
	"context"
	"net/http"

	"project-manager/internal/api"
	"project-manager/internal/handler"
	"project-manager/internal/message"
	"project-manager/internal/model"
	"project-manager/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 由 *service.NotificationService 實作
type Service interface {
	CreateNotification(ctx context.Context, n model.Notification) (*model.Notification, error)
	GetNotificationByID(ctx context.Context, id int) (*model.Notification, error)
	MarkAsRead(ctx context.Context, id int) (*model.Notification, error)
	UpdateNotification(ctx context.Context, id int, in service.UpdateNotificationInput) (*model.Notification, error)
	DeleteNotification(ctx context.Context, id int) error
}

// @Summary     Create a notification
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateNotificationRequest true "通知內容"
// @Success     201  {object} model.Notification
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /notifications [post]
func CreateNotificationHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateNotificationRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}
		n, err := svc.CreateNotification(c.Request().Context(), model.Notification{
			UserID:  req.UserID,
			Title:   req.Title,
			Message: req.Message,
		})
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusCreated, n)
	}
}

// @Summary     Get a notification by ID
// @Tags        notifications
// @Produce     json
// @Param       id  path     int true "通知 ID"
// @Success     200 {object} model.Notification
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /notifications/{id} [get]
func GetNotificationHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.NotificationNotFound)
		}
		n, err := svc.GetNotificationByID(c.Request().Context(), id)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, n)
	}
}

// @Summary     Update a notification
// @Description 將通知標為已讀，可同時修改標題與內容；isRead=false 會被拒絕
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       id   path     int                           true  "通知 ID"
// @Param       body body     api.UpdateNotificationRequest false "要更新的欄位"
// @Success     200  {object} model.Notification
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /notifications/{id} [put]
func UpdateNotificationHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.NotificationNotFound)
		}
		var req api.UpdateNotificationRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}
		n, err := svc.UpdateNotification(c.Request().Context(), id, service.UpdateNotificationInput{
			Title:   req.Title,
			Message: req.Message,
			IsRead:  req.IsRead,
		})
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, n)
	}
}

// @Summary     Mark a notification as read
// @Description 重複呼叫不會報錯，回傳更新後的通知
// @Tags        notifications
// @Produce     json
// @Param       id  path     int true "通知 ID"
// @Success     200 {object} model.Notification
// @Failure     404 {object} api.ErrorResponse
// @Failure     405 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /notifications/{id}/read [put]
func MarkAsReadHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.NotificationNotFound)
		}
		n, err := svc.MarkAsRead(c.Request().Context(), id)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, n)
	}
}

// @Summary     Delete a notification
// @Tags        notifications
// @Produce     json
// @Param       id  path     int true "通知 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /notifications/{id} [delete]
func DeleteNotificationHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.NotificationNotFound)
		}
		if err := svc.DeleteNotification(c.Request().Context(), id); err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgs.Get(message.NotificationDeleted)})
	}
}
