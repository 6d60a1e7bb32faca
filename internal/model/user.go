// File: internal/model/user.go
package model

import "time"

type Role string

const (
	RoleAdmin   Role = "Administrador"
	RoleManager Role = "Gestor"
	RoleUser    Role = "Usuario"
)

// User 對應 users 資料表；PasswordHash 永不序列化
type User struct {
	ID           int       `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Expertise    string    `db:"expertise" json:"expertise"`
	Role         Role      `db:"role" json:"role"`
	PhotoURL     *string   `db:"photo_url" json:"photoUrl,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// UserPatch 描述部分更新，nil 欄位保持原值
type UserPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	Expertise    *string
	Role         *Role
	PhotoURL     *string

	// ClearPhotoURL 為 true 時 photo_url 設為 NULL，優先於 PhotoURL
	ClearPhotoURL bool
}
