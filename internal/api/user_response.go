package api

import (
	"time"

	"project-manager/internal/model"
)

// UserResponse 是不含密碼的使用者資料
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	FirstName string    `json:"firstName" example:"Ana"`
	LastName  string    `json:"lastName" example:"García"`
	Email     string    `json:"email" example:"ana@example.com"`
	Expertise string    `json:"expertise" example:"Backend"`
	Role      string    `json:"role" example:"Usuario"`
	PhotoURL  *string   `json:"photoUrl" example:"https://example.com/ana.png"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Expertise: u.Expertise,
		Role:      string(u.Role),
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// swagger:model api.VerifyUserResponse
type VerifyUserResponse struct {
	Exists bool          `json:"exists" example:"true"`
	User   *UserResponse `json:"user"`
}

// DebugStoreResponse 顯示使用者清單目前由快取或資料庫提供
// swagger:model api.DebugStoreResponse
type DebugStoreResponse struct {
	Source string         `json:"source" example:"cache"`
	Count  int            `json:"count" example:"2"`
	Users  []UserResponse `json:"users"`
}
