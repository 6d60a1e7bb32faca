package store

import (
	"context"
	"fmt"

	"project-manager/internal/database"
	"project-manager/internal/model"

	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, title, description, location, start_date, end_date, created_by, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	e := &model.Event{}
	if err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.StartDate,
		&e.EndDate,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return e, nil
}

func CreateEvent(ctx context.Context, db database.DB, e *model.Event) (*model.Event, error) {
	created, err := scanEvent(db.QueryRow(ctx,
		`INSERT INTO events (title, description, location, start_date, end_date, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+eventColumns,
		e.Title,
		e.Description,
		e.Location,
		e.StartDate,
		e.EndDate,
		e.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("CreateEvent: %w", err)
	}
	return created, nil
}

func ListEvents(ctx context.Context, db database.DB) ([]model.Event, error) {
	rows, err := db.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("ListEvents: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("ListEvents: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEvents: %w", err)
	}
	return events, nil
}

func GetEventByID(ctx context.Context, db database.DB, eventID int) (*model.Event, error) {
	e, err := scanEvent(db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`,
		eventID,
	))
	if err != nil {
		return nil, fmt.Errorf("GetEventByID: %w", err)
	}
	return e, nil
}

// ListEventAttendees 透過 event_attendees 與 users 的 join 取得參加者
func ListEventAttendees(ctx context.Context, db database.DB, eventID int) ([]model.Attendee, error) {
	rows, err := db.Query(ctx,
		`SELECT u.id, u.first_name, u.last_name, u.email, a.status, a.created_at
		 FROM event_attendees a
		 JOIN users u ON u.id = a.user_id
		 WHERE a.event_id = $1
		 ORDER BY a.created_at, u.id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEventAttendees: %w", err)
	}
	defer rows.Close()

	attendees := []model.Attendee{}
	for rows.Next() {
		var a model.Attendee
		if err := rows.Scan(&a.UserID, &a.FirstName, &a.LastName, &a.Email, &a.Status, &a.JoinedAt); err != nil {
			return nil, fmt.Errorf("ListEventAttendees: %w", err)
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEventAttendees: %w", err)
	}
	return attendees, nil
}

func UpdateEvent(ctx context.Context, db database.DB, eventID int, p model.EventPatch) (*model.Event, error) {
	e, err := scanEvent(db.QueryRow(ctx,
		`UPDATE events SET
		   title       = COALESCE($1, title),
		   description = COALESCE($2, description),
		   location    = COALESCE($3, location),
		   start_date  = COALESCE($4, start_date),
		   end_date    = CASE WHEN $6 THEN NULL ELSE COALESCE($5, end_date) END,
		   updated_at  = NOW()
		 WHERE id = $7
		 RETURNING `+eventColumns,
		p.Title,
		p.Description,
		p.Location,
		p.StartDate,
		p.EndDate,
		p.ClearEndDate,
		eventID,
	))
	if err != nil {
		return nil, fmt.Errorf("UpdateEvent: %w", err)
	}
	return e, nil
}

func DeleteEvent(ctx context.Context, db database.DB, eventID int) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return false, fmt.Errorf("DeleteEvent: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AddAttendee 新增參加者並回傳 join 後的資料；外鍵或主鍵衝突以 *pgconn.PgError 回報
func AddAttendee(ctx context.Context, db database.DB, eventID, userID int, status model.AttendeeStatus) (*model.Attendee, error) {
	a := &model.Attendee{}
	err := db.QueryRow(ctx,
		`WITH ins AS (
		   INSERT INTO event_attendees (event_id, user_id, status)
		   VALUES ($1, $2, $3)
		   RETURNING user_id, status, created_at
		 )
		 SELECT u.id, u.first_name, u.last_name, u.email, ins.status, ins.created_at
		 FROM ins JOIN users u ON u.id = ins.user_id`,
		eventID,
		userID,
		status,
	).Scan(&a.UserID, &a.FirstName, &a.LastName, &a.Email, &a.Status, &a.JoinedAt)
	if err != nil {
		return nil, fmt.Errorf("AddAttendee: %w", err)
	}
	return a, nil
}

func RemoveAttendee(ctx context.Context, db database.DB, eventID, userID int) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM event_attendees WHERE event_id = $1 AND user_id = $2`,
		eventID,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("RemoveAttendee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
