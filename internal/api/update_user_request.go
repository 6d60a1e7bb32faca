// File: internal/api/update_user_request.go
package api

// UpdateUserRequest 只更新有帶的欄位
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" example:"Ana"`
	LastName  *string `json:"lastName" example:"García"`
	Email     *string `json:"email" validate:"omitempty,email" example:"ana@example.com"`
	Password  *string `json:"password" validate:"omitempty,min=1" example:"NewSecret456!"`
	Expertise *string `json:"expertise" example:"Frontend"`
	Role      *string `json:"role" validate:"omitempty,oneof=Administrador Gestor Usuario" example:"Gestor"`
	PhotoURL  *string `json:"photoUrl" validate:"omitempty,url" example:"https://example.com/ana.png"`

	// ClearPhotoURL 將 photoUrl 設回 null，不可與 photoUrl 同時使用
	ClearPhotoURL bool `json:"clearPhotoUrl" example:"false"`
}
