// File: internal/service/notification.go
package service

import (
	"context"

	"project-manager/internal/database"
	"project-manager/internal/message"
	"project-manager/internal/model"
	"project-manager/internal/store"
)

// UpdateNotificationInput 中 IsRead 只能為 true；已讀是終止狀態
type UpdateNotificationInput struct {
	Title   *string
	Message *string
	IsRead  *bool
}

type NotificationService struct {
	db database.DB
}

func NewNotificationService(db database.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) CreateNotification(ctx context.Context, n model.Notification) (*model.Notification, error) {
	created, err := store.CreateNotification(ctx, s.db, &n)
	if err != nil {
		return nil, translate(err, message.UserNotFound, message.Internal)
	}
	return created, nil
}

// ListUserNotifications 使用者不存在時回傳 ErrNotFound
func (s *NotificationService) ListUserNotifications(ctx context.Context, userID int, unreadOnly bool) ([]model.Notification, error) {
	if _, err := store.GetUserByID(ctx, s.db, userID); err != nil {
		return nil, translate(err, message.UserNotFound, message.Internal)
	}
	return store.ListNotificationsByUser(ctx, s.db, userID, unreadOnly)
}

func (s *NotificationService) GetNotificationByID(ctx context.Context, id int) (*model.Notification, error) {
	n, err := store.GetNotificationByID(ctx, s.db, id)
	if err != nil {
		return nil, translate(err, message.NotificationNotFound, message.Internal)
	}
	return n, nil
}

// MarkAsRead 將通知標為已讀；已讀的通知再次呼叫不會報錯
func (s *NotificationService) MarkAsRead(ctx context.Context, id int) (*model.Notification, error) {
	n, err := store.MarkNotificationRead(ctx, s.db, id)
	if err != nil {
		return nil, translate(err, message.NotificationNotFound, message.Internal)
	}
	return n, nil
}

func (s *NotificationService) UpdateNotification(ctx context.Context, id int, in UpdateNotificationInput) (*model.Notification, error) {
	if in.IsRead != nil && !*in.IsRead {
		return nil, newError(ErrBadRequest, message.ReadIsTerminal)
	}
	n, err := store.UpdateNotification(ctx, s.db, id, model.NotificationPatch{
		Title:   in.Title,
		Message: in.Message,
	})
	if err != nil {
		return nil, translate(err, message.NotificationNotFound, message.Internal)
	}
	return n, nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id int) error {
	deleted, err := store.DeleteNotification(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !deleted {
		return newError(ErrNotFound, message.NotificationNotFound)
	}
	return nil
}
