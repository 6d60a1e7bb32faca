package events

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

type testValidator struct{ v *validator.Validate }

func (tv *testValidator) Validate(i interface{}) error { return tv.v.Struct(i) }

type stubService struct {
	createFn func(context.Context, model.Event) (*model.Event, error)
	listFn   func(context.Context) ([]model.Event, error)
	getFn    func(context.Context, int) (*model.Event, error)
	updateFn func(context.Context, int, model.EventPatch) (*model.Event, error)
	deleteFn func(context.Context, int) error
	addFn    func(context.Context, int, int, model.AttendeeStatus) (*model.Attendee, error)
	removeFn func(context.Context, int, int) error
}

func (s *stubService) CreateEvent(ctx context.Context, e model.Event) (*model.Event, error) {
	return s.createFn(ctx, e)
}
func (s *stubService) ListEvents(ctx context.Context) ([]model.Event, error) { return s.listFn(ctx) }
func (s *stubService) GetEventByID(ctx context.Context, id int) (*model.Event, error) {
	return s.getFn(ctx, id)
}
func (s *stubService) UpdateEvent(ctx context.Context, id int, p model.EventPatch) (*model.Event, error) {
	return s.updateFn(ctx, id, p)
}
func (s *stubService) DeleteEvent(ctx context.Context, id int) error { return s.deleteFn(ctx, id) }
func (s *stubService) AddAttendee(ctx context.Context, eventID, userID int, st model.AttendeeStatus) (*model.Attendee, error) {
	return s.addFn(ctx, eventID, userID, st)
}
func (s *stubService) RemoveAttendee(ctx context.Context, eventID, userID int) error {
	return s.removeFn(ctx, eventID, userID)
}

var (
	msgs  = message.New("es")
	start = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

func newCtx(e *echo.Echo, method, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/api/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) > 0 {
		names := []string{"id", "userId"}[:len(params)]
		c.SetParamNames(names...)
		c.SetParamValues(params...)
	}
	return c, rec
}

func eventNotFound() error {
	return &service.Error{Kind: service.ErrNotFound, Key: message.EventNotFound}
}

func TestCreateEventHandler(t *testing.T) {
	e := newEcho()
	var got model.Event
	svc := &stubService{createFn: func(_ context.Context, ev model.Event) (*model.Event, error) {
		got = ev
		ev.ID = 1
		return &ev, nil
	}}

	t.Run("anonymous", func(t *testing.T) {
		c, rec := newCtx(e, http.MethodPost, `{"title":"Kickoff","startDate":"2025-06-01T09:00:00Z"}`)
		require.NoError(t, CreateEventHandler(svc, msgs)(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Nil(t, got.CreatedBy)
		require.True(t, start.Equal(got.StartDate))
		require.Contains(t, rec.Body.String(), `"title":"Kickoff"`)
		require.NotContains(t, rec.Body.String(), "attendees")
	})

	t.Run("creator from token", func(t *testing.T) {
		c, rec := newCtx(e, http.MethodPost, `{"title":"Kickoff","startDate":"2025-06-01T09:00:00Z"}`)
		c.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 7})
		require.NoError(t, CreateEventHandler(svc, msgs)(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 7, *got.CreatedBy)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, body := range []string{
			`{"startDate":"2025-06-01T09:00:00Z"}`,
			`{"title":"x"}`,
			`{"title":"x","startDate":"2025-06-01T09:00:00Z","endDate":"2025-05-01T09:00:00Z"}`,
		} {
			c, rec := newCtx(e, http.MethodPost, body)
			require.NoError(t, CreateEventHandler(svc, msgs)(c))
			require.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})
}

func TestListEventsHandler(t *testing.T) {
	e := newEcho()
	svc := &stubService{listFn: func(context.Context) ([]model.Event, error) { return []model.Event{}, nil }}
	c, rec := newCtx(e, http.MethodGet, "")
	require.NoError(t, ListEventsHandler(svc, msgs)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())

	svc.listFn = func(context.Context) ([]model.Event, error) { return nil, errors.New("db") }
	c, rec = newCtx(e, http.MethodGet, "")
	require.NoError(t, ListEventsHandler(svc, msgs)(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetEventHandler(t *testing.T) {
	e := newEcho()
	svc := &stubService{getFn: func(_ context.Context, id int) (*model.Event, error) {
		if id != 4 {
			return nil, eventNotFound()
		}
		return &model.Event{ID: 4, Title: "Review", StartDate: start, Attendees: []model.Attendee{{UserID: 2, Status: model.AttendeeConfirmed}}}, nil
	}}

	c, rec := newCtx(e, http.MethodGet, "", "4")
	require.NoError(t, GetEventHandler(svc, msgs)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"attendees":[{"userId":2`)

	for _, id := range []string{"5", "zz"} {
		c, rec = newCtx(e, http.MethodGet, "", id)
		require.NoError(t, GetEventHandler(svc, msgs)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"Evento no encontrado"}`, rec.Body.String())
	}
}

func TestUpdateEventHandler(t *testing.T) {
	e := newEcho()
	svc := &stubService{updateFn: func(_ context.Context, id int, p model.EventPatch) (*model.Event, error) {
		if id != 4 {
			return nil, eventNotFound()
		}
		require.Nil(t, p.Description)
		return &model.Event{ID: 4, Title: *p.Title, StartDate: start}, nil
	}}

	c, rec := newCtx(e, http.MethodPut, `{"title":"Nuevo"}`, "4")
	require.NoError(t, UpdateEventHandler(svc, msgs)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"title":"Nuevo"`)

	c, rec = newCtx(e, http.MethodPut, `{"title":"Nuevo"}`, "9")
	require.NoError(t, UpdateEventHandler(svc, msgs)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newCtx(e, http.MethodPut, `{"title":""}`, "4")
	require.NoError(t, UpdateEventHandler(svc, msgs)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateEventHandlerDates(t *testing.T) {
	e := newEcho()
	var got model.EventPatch
	called := false
	svc := &stubService{updateFn: func(_ context.Context, _ int, p model.EventPatch) (*model.Event, error) {
		called = true
		got = p
		if p.StartDate != nil && p.EndDate == nil && !p.ClearEndDate {
			return nil, &service.Error{Kind: service.ErrBadRequest, Key: message.InvalidDateRange}
		}
		return &model.Event{ID: 4, Title: "Review", StartDate: start}, nil
	}}

	t.Run("end before start in one request", func(t *testing.T) {
		called = false
		c, rec := newCtx(e, http.MethodPut, `{"startDate":"2025-06-02T09:00:00Z","endDate":"2025-06-01T09:00:00Z"}`, "4")
		require.NoError(t, UpdateEventHandler(svc, msgs)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"La fecha de fin no puede ser anterior a la fecha de inicio"}`, rec.Body.String())
		require.False(t, called)
	})

	t.Run("start after stored end", func(t *testing.T) {
		c, rec := newCtx(e, http.MethodPut, `{"startDate":"2025-06-09T09:00:00Z"}`, "4")
		require.NoError(t, UpdateEventHandler(svc, msgs)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"La fecha de fin no puede ser anterior a la fecha de inicio"}`, rec.Body.String())
	})

	t.Run("clear end date", func(t *testing.T) {
		c, rec := newCtx(e, http.MethodPut, `{"clearEndDate":true}`, "4")
		require.NoError(t, UpdateEventHandler(svc, msgs)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, got.ClearEndDate)
		require.Nil(t, got.EndDate)
	})

	t.Run("clear together with end date", func(t *testing.T) {
		called = false
		c, rec := newCtx(e, http.MethodPut, `{"clearEndDate":true,"endDate":"2025-06-01T10:00:00Z"}`, "4")
		require.NoError(t, UpdateEventHandler(svc, msgs)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.False(t, called)
	})
}

func TestDeleteEventHandler(t *testing.T) {
	e := newEcho()
	deleted := map[int]bool{}
	svc := &stubService{deleteFn: func(_ context.Context, id int) error {
		if deleted[id] {
			return eventNotFound()
		}
		deleted[id] = true
		return nil
	}}

	c, rec := newCtx(e, http.MethodDelete, "", "4")
	require.NoError(t, DeleteEventHandler(svc, msgs)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Evento eliminado correctamente"}`, rec.Body.String())

	c, rec = newCtx(e, http.MethodDelete, "", "4")
	require.NoError(t, DeleteEventHandler(svc, msgs)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendeeHandlers(t *testing.T) {
	e := newEcho()
	svc := &stubService{
		addFn: func(_ context.Context, eventID, userID int, st model.AttendeeStatus) (*model.Attendee, error) {
			if userID == 3 {
				return nil, &service.Error{Kind: service.ErrConflict, Key: message.AlreadyAttending}
			}
			return &model.Attendee{UserID: userID, Status: st}, nil
		},
		removeFn: func(_ context.Context, eventID, userID int) error {
			if userID != 2 {
				return &service.Error{Kind: service.ErrNotFound, Key: message.NotFound}
			}
			return nil
		},
	}

	c, rec := newCtx(e, http.MethodPost, `{"userId":2,"status":"confirmed"}`, "4")
	require.NoError(t, AddAttendeeHandler(svc, msgs)(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"confirmed"`)

	c, rec = newCtx(e, http.MethodPost, `{"userId":3}`, "4")
	require.NoError(t, AddAttendeeHandler(svc, msgs)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"El usuario ya es asistente del evento"}`, rec.Body.String())

	c, rec = newCtx(e, http.MethodPost, `{"userId":2,"status":"maybe"}`, "4")
	require.NoError(t, AddAttendeeHandler(svc, msgs)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newCtx(e, http.MethodDelete, "", "4", "2")
	require.NoError(t, RemoveAttendeeHandler(svc, msgs)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = newCtx(e, http.MethodDelete, "", "4", "8")
	require.NoError(t, RemoveAttendeeHandler(svc, msgs)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newCtx(e, http.MethodDelete, "", "4", "x")
	require.NoError(t, RemoveAttendeeHandler(svc, msgs)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
