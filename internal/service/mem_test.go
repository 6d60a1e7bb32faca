package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"project-manager/internal/database"
	"project-manager/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memDB 以 SQL 片段分派到記憶體資料，模擬 users 與 notifications 表
type memDB struct {
	mu            sync.Mutex
	nextID        int
	users         map[int]model.User
	notifications map[int]model.Notification
}

func newMemDB() *memDB {
	return &memDB{users: map[int]model.User{}, notifications: map[int]model.Notification{}}
}

func (m *memDB) DB() *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: m.queryRow,
		QueryFn:    m.query,
		ExecFn:     m.exec,
	}
}

func userRow(u model.User) []any {
	return []any{u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Expertise, u.Role, u.PhotoURL, u.CreatedAt, u.UpdatedAt}
}

func notificationRow(n model.Notification) []any {
	return []any{n.ID, n.UserID, n.Title, n.Message, n.IsRead, n.ReadAt, n.CreatedAt}
}

func (m *memDB) queryRow(_ context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	sql = strings.TrimSpace(sql)
	now := time.Now().UTC()

	switch {
	case strings.HasPrefix(sql, "INSERT INTO users"):
		email := args[2].(string)
		for _, u := range m.users {
			if u.Email == email {
				return &database.FakeRow{Err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			}
		}
		m.nextID++
		u := model.User{
			ID:           m.nextID,
			FirstName:    args[0].(string),
			LastName:     args[1].(string),
			Email:        email,
			PasswordHash: args[3].(string),
			Expertise:    args[4].(string),
			Role:         args[5].(model.Role),
			PhotoURL:     args[6].(*string),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		m.users[u.ID] = u
		return &database.FakeRow{Values: userRow(u)}

	case strings.HasPrefix(sql, "UPDATE users"):
		u, ok := m.users[args[8].(int)]
		if !ok {
			return &database.FakeRow{Err: pgx.ErrNoRows}
		}
		set := func(dst *string, v any) {
			if p := v.(*string); p != nil {
				*dst = *p
			}
		}
		set(&u.FirstName, args[0])
		set(&u.LastName, args[1])
		set(&u.Email, args[2])
		set(&u.PasswordHash, args[3])
		set(&u.Expertise, args[4])
		if r := args[5].(*model.Role); r != nil {
			u.Role = *r
		}
		if p := args[6].(*string); p != nil {
			u.PhotoURL = p
		}
		if args[7].(bool) {
			u.PhotoURL = nil
		}
		for id, other := range m.users {
			if id != u.ID && other.Email == u.Email {
				return &database.FakeRow{Err: &pgconn.PgError{Code: "23505"}}
			}
		}
		u.UpdatedAt = now
		m.users[u.ID] = u
		return &database.FakeRow{Values: userRow(u)}

	case strings.Contains(sql, "FROM users WHERE email"):
		for _, u := range m.users {
			if u.Email == args[0].(string) {
				return &database.FakeRow{Values: userRow(u)}
			}
		}
		return &database.FakeRow{Err: pgx.ErrNoRows}

	case strings.Contains(sql, "FROM users WHERE id"):
		if u, ok := m.users[args[0].(int)]; ok {
			return &database.FakeRow{Values: userRow(u)}
		}
		return &database.FakeRow{Err: pgx.ErrNoRows}

	case strings.HasPrefix(sql, "INSERT INTO notifications"):
		userID := args[0].(int)
		if _, ok := m.users[userID]; !ok {
			return &database.FakeRow{Err: &pgconn.PgError{Code: "23503", ConstraintName: "notifications_user_id_fkey"}}
		}
		m.nextID++
		n := model.Notification{ID: m.nextID, UserID: userID, Title: args[1].(string), Message: args[2].(string), CreatedAt: now}
		m.notifications[n.ID] = n
		return &database.FakeRow{Values: notificationRow(n)}

	case strings.HasPrefix(sql, "UPDATE notifications"):
		id := args[len(args)-1].(int)
		n, ok := m.notifications[id]
		if !ok {
			return &database.FakeRow{Err: pgx.ErrNoRows}
		}
		if len(args) == 3 {
			if p := args[0].(*string); p != nil {
				n.Title = *p
			}
			if p := args[1].(*string); p != nil {
				n.Message = *p
			}
		}
		n.IsRead = true
		if n.ReadAt == nil {
			n.ReadAt = &now
		}
		m.notifications[id] = n
		return &database.FakeRow{Values: notificationRow(n)}

	case strings.Contains(sql, "FROM notifications WHERE id"):
		if n, ok := m.notifications[args[0].(int)]; ok {
			return &database.FakeRow{Values: notificationRow(n)}
		}
		return &database.FakeRow{Err: pgx.ErrNoRows}
	}
	panic(fmt.Sprintf("memDB: unexpected QueryRow %q", sql))
}

func (m *memDB) query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case strings.Contains(sql, "FROM users ORDER BY id"):
		ids := make([]int, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		rows := &database.FakeRows{}
		for _, id := range ids {
			rows.Data = append(rows.Data, userRow(m.users[id]))
		}
		return rows, nil

	case strings.Contains(sql, "FROM notifications"):
		userID, unreadOnly := args[0].(int), args[1].(bool)
		rows := &database.FakeRows{}
		for _, n := range m.notifications {
			if n.UserID == userID && (!unreadOnly || !n.IsRead) {
				rows.Data = append(rows.Data, notificationRow(n))
			}
		}
		return rows, nil
	}
	panic(fmt.Sprintf("memDB: unexpected Query %q", sql))
}

func (m *memDB) exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := args[0].(int)

	switch {
	case strings.HasPrefix(sql, "DELETE FROM users"):
		if _, ok := m.users[id]; !ok {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		delete(m.users, id)
		return pgconn.NewCommandTag("DELETE 1"), nil

	case strings.HasPrefix(sql, "DELETE FROM notifications"):
		if _, ok := m.notifications[id]; !ok {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		delete(m.notifications, id)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	panic(fmt.Sprintf("memDB: unexpected Exec %q", sql))
}
