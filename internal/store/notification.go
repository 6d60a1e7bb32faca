package store

import (
	"context"
	"fmt"

	"project-manager/internal/database"
	"project-manager/internal/model"

	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, user_id, title, message, is_read, read_at, created_at`

func scanNotification(row pgx.Row) (*model.Notification, error) {
	n := &model.Notification{}
	if err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Message,
		&n.IsRead,
		&n.ReadAt,
		&n.CreatedAt,
	); err != nil {
		return nil, err
	}
	return n, nil
}

func CreateNotification(ctx context.Context, db database.DB, n *model.Notification) (*model.Notification, error) {
	created, err := scanNotification(db.QueryRow(ctx,
		`INSERT INTO notifications (user_id, title, message)
		 VALUES ($1, $2, $3)
		 RETURNING `+notificationColumns,
		n.UserID,
		n.Title,
		n.Message,
	))
	if err != nil {
		return nil, fmt.Errorf("CreateNotification: %w", err)
	}
	return created, nil
}

func GetNotificationByID(ctx context.Context, db database.DB, id int) (*model.Notification, error) {
	n, err := scanNotification(db.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("GetNotificationByID: %w", err)
	}
	return n, nil
}

func ListNotificationsByUser(ctx context.Context, db database.DB, userID int, unreadOnly bool) ([]model.Notification, error) {
	rows, err := db.Query(ctx,
		`SELECT `+notificationColumns+`
		 FROM notifications
		 WHERE user_id = $1 AND (NOT $2 OR is_read = FALSE)
		 ORDER BY created_at DESC, id DESC`,
		userID,
		unreadOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("ListNotificationsByUser: %w", err)
	}
	defer rows.Close()

	list := []model.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("ListNotificationsByUser: %w", err)
		}
		list = append(list, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListNotificationsByUser: %w", err)
	}
	return list, nil
}

// MarkNotificationRead 將通知標為已讀；重複呼叫保留第一次的 read_at
func MarkNotificationRead(ctx context.Context, db database.DB, id int) (*model.Notification, error) {
	n, err := scanNotification(db.QueryRow(ctx,
		`UPDATE notifications
		 SET is_read = TRUE, read_at = COALESCE(read_at, NOW())
		 WHERE id = $1
		 RETURNING `+notificationColumns,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("MarkNotificationRead: %w", err)
	}
	return n, nil
}

// UpdateNotification 標為已讀並覆寫 patch 中非 nil 的欄位
func UpdateNotification(ctx context.Context, db database.DB, id int, p model.NotificationPatch) (*model.Notification, error) {
	n, err := scanNotification(db.QueryRow(ctx,
		`UPDATE notifications SET
		   title   = COALESCE($1, title),
		   message = COALESCE($2, message),
		   is_read = TRUE,
		   read_at = COALESCE(read_at, NOW())
		 WHERE id = $3
		 RETURNING `+notificationColumns,
		p.Title,
		p.Message,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("UpdateNotification: %w", err)
	}
	return n, nil
}

func DeleteNotification(ctx context.Context, db database.DB, id int) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("DeleteNotification: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
