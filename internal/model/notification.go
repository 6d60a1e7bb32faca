// File: internal/model/notification.go
package model

import "time"

// Notification 只有 unread → read 單向轉換
type Notification struct {
	ID        int        `db:"id" json:"id"`
	UserID    int        `db:"user_id" json:"userId"`
	Title     string     `db:"title" json:"title"`
	Message   string     `db:"message" json:"message"`
	IsRead    bool       `db:"is_read" json:"isRead"`
	ReadAt    *time.Time `db:"read_at" json:"readAt,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

type NotificationPatch struct {
	Title   *string
	Message *string
}
