package events

import (
	"context"
	"net/http"

	"project-manager/internal/api"
	"project-manager/internal/handler"
	"project-manager/internal/message"
	"project-manager/internal/middleware"
	"project-manager/internal/model"

	"github.com/labstack/echo/v4"
)

// Service 由 *service.EventService 實作
type Service interface {
	CreateEvent(ctx context.Context, e model.Event) (*model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEventByID(ctx context.Context, id int) (*model.Event, error)
	UpdateEvent(ctx context.Context, id int, p model.EventPatch) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int) error
	AddAttendee(ctx context.Context, eventID, userID int, status model.AttendeeStatus) (*model.Attendee, error)
	RemoveAttendee(ctx context.Context, eventID, userID int) error
}

// @Summary     List events
// @Tags        events
// @Produce     json
// @Success     200 {array}  model.Event
// @Failure     500 {object} api.ErrorResponse
// @Router      /events [get]
func ListEventsHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.ListEvents(c.Request().Context())
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// @Summary     Create an event
// @Description 帶有效 token 時以該使用者為建立者
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateEventRequest true "活動資料"
// @Success     201  {object} model.Event
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /events [post]
func CreateEventHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateEventRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}
		if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidDateRange)
		}

		e := model.Event{
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
		}
		if claims, ok := middleware.ClaimsFrom(c); ok {
			e.CreatedBy = &claims.UserID
		}
		created, err := svc.CreateEvent(c.Request().Context(), e)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

// @Summary     Get an event by ID
// @Description 回傳活動與參加者清單
// @Tags        events
// @Produce     json
// @Param       id  path     int true "活動 ID"
// @Success     200 {object} model.Event
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /events/{id} [get]
func GetEventHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.EventNotFound)
		}
		e, err := svc.GetEventByID(c.Request().Context(), id)
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, e)
	}
}

// @Summary     Update an event by ID
// @Description clearEndDate=true 時清除結束時間
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       id   path     int                    true "活動 ID"
// @Param       body body     api.UpdateEventRequest true "要更新的欄位"
// @Success     200  {object} model.Event
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /events/{id} [put]
func UpdateEventHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.EventNotFound)
		}
		var req api.UpdateEventRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}
		if req.ClearEndDate && req.EndDate != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}
		// 只帶其中一個日期時，由資料庫的 events_date_range 對照既有值檢查
		if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidDateRange)
		}
		e, err := svc.UpdateEvent(c.Request().Context(), id, model.EventPatch{
			Title:        req.Title,
			Description:  req.Description,
			Location:     req.Location,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			ClearEndDate: req.ClearEndDate,
		})
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, e)
	}
}

// @Summary     Delete an event by ID
// @Tags        events
// @Produce     json
// @Param       id  path     int true "活動 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /events/{id} [delete]
func DeleteEventHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.EventNotFound)
		}
		if err := svc.DeleteEvent(c.Request().Context(), id); err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgs.Get(message.EventDeleted)})
	}
}

// @Summary     Add an attendee
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       id   path     int                    true "活動 ID"
// @Param       body body     api.AddAttendeeRequest true "參加者"
// @Success     201  {object} model.Attendee
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /events/{id}/attendees [post]
func AddAttendeeHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.EventNotFound)
		}
		var req api.AddAttendeeRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Fail(c, msgs, http.StatusBadRequest, message.InvalidBody)
		}
		a, err := svc.AddAttendee(c.Request().Context(), id, req.UserID, model.AttendeeStatus(req.Status))
		if err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusCreated, a)
	}
}

// @Summary     Remove an attendee
// @Tags        events
// @Produce     json
// @Param       id     path     int true "活動 ID"
// @Param       userId path     int true "使用者 ID"
// @Success     200    {object} api.MessageResponse
// @Failure     404    {object} api.ErrorResponse
// @Failure     500    {object} api.ErrorResponse
// @Router      /events/{id}/attendees/{userId} [delete]
func RemoveAttendeeHandler(svc Service, msgs *message.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.PathID(c, "id")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.EventNotFound)
		}
		userID, ok := handler.PathID(c, "userId")
		if !ok {
			return handler.Fail(c, msgs, http.StatusNotFound, message.UserNotFound)
		}
		if err := svc.RemoveAttendee(c.Request().Context(), id, userID); err != nil {
			return handler.RespondError(c, msgs, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgs.Get(message.AttendeeRemoved)})
	}
}
