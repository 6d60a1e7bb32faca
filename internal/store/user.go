package store

import (
	"context"
	"fmt"

	"project-manager/internal/database"
	"project-manager/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, first_name, last_name, email, password_hash, expertise, role, photo_url, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.Expertise,
		&u.Role,
		&u.PhotoURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password_hash, expertise, role, photo_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+userColumns,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		u.Expertise,
		u.Role,
		u.PhotoURL,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return created, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	))
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	))
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// UpdateUser 只覆寫 patch 中非 nil 的欄位，找不到資料時回傳 pgx.ErrNoRows
func UpdateUser(ctx context.Context, db database.DB, userID int, p model.UserPatch) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`UPDATE users SET
		   first_name    = COALESCE($1, first_name),
		   last_name     = COALESCE($2, last_name),
		   email         = COALESCE($3, email),
		   password_hash = COALESCE($4, password_hash),
		   expertise     = COALESCE($5, expertise),
		   role          = COALESCE($6, role),
		   photo_url     = CASE WHEN $8 THEN NULL ELSE COALESCE($7, photo_url) END,
		   updated_at    = NOW()
		 WHERE id = $9
		 RETURNING `+userColumns,
		p.FirstName,
		p.LastName,
		p.Email,
		p.PasswordHash,
		p.Expertise,
		p.Role,
		p.PhotoURL,
		p.ClearPhotoURL,
		userID,
	))
	if err != nil {
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return u, nil
}

// DeleteUser 回傳是否實際刪除了資料列
func DeleteUser(ctx context.Context, db database.DB, userID int) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("DeleteUser: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
