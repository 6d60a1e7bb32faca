package store

import (
	"time"

	"project-manager/internal/model"
)

/* ---------- 共用測試資料 ---------- */

var now = time.Date(2025, 5, 1, 15, 4, 5, 0, time.UTC)

func userValues(u model.User) []any {
	return []any{u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Expertise, u.Role, u.PhotoURL, u.CreatedAt, u.UpdatedAt}
}

func eventValues(e model.Event) []any {
	return []any{e.ID, e.Title, e.Description, e.Location, e.StartDate, e.EndDate, e.CreatedBy, e.CreatedAt, e.UpdatedAt}
}

func attendeeValues(a model.Attendee) []any {
	return []any{a.UserID, a.FirstName, a.LastName, a.Email, a.Status, a.JoinedAt}
}

func notificationValues(n model.Notification) []any {
	return []any{n.ID, n.UserID, n.Title, n.Message, n.IsRead, n.ReadAt, n.CreatedAt}
}
