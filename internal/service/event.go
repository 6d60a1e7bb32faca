// File: internal/service/event.go
package service

import (
	"context"

	"project-manager/internal/database"
	"project-manager/internal/message"
	"project-manager/internal/model"
	"project-manager/internal/store"
)

type EventService struct {
	db database.DB
}

func NewEventService(db database.DB) *EventService {
	return &EventService{db: db}
}

func (s *EventService) CreateEvent(ctx context.Context, e model.Event) (*model.Event, error) {
	created, err := store.CreateEvent(ctx, s.db, &e)
	if err != nil {
		return nil, translate(err, message.UserNotFound, message.Internal)
	}
	return created, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]model.Event, error) {
	return store.ListEvents(ctx, s.db)
}

// GetEventByID 取得單一活動並附上參加者清單
func (s *EventService) GetEventByID(ctx context.Context, id int) (*model.Event, error) {
	e, err := store.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, translate(err, message.EventNotFound, message.Internal)
	}
	attendees, err := store.ListEventAttendees(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	e.Attendees = attendees
	return e, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id int, p model.EventPatch) (*model.Event, error) {
	e, err := store.UpdateEvent(ctx, s.db, id, p)
	if err != nil {
		return nil, translate(err, message.EventNotFound, message.Internal)
	}
	return e, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id int) error {
	deleted, err := store.DeleteEvent(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !deleted {
		return newError(ErrNotFound, message.EventNotFound)
	}
	return nil
}

// AddAttendee 將使用者加入活動；重複加入回傳 ErrConflict
func (s *EventService) AddAttendee(ctx context.Context, eventID, userID int, status model.AttendeeStatus) (*model.Attendee, error) {
	if status == "" {
		status = model.AttendeePending
	}
	a, err := store.AddAttendee(ctx, s.db, eventID, userID, status)
	if err != nil {
		return nil, translate(err, message.EventNotFound, message.AlreadyAttending)
	}
	return a, nil
}

func (s *EventService) RemoveAttendee(ctx context.Context, eventID, userID int) error {
	removed, err := store.RemoveAttendee(ctx, s.db, eventID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return newError(ErrNotFound, message.NotFound)
	}
	return nil
}
