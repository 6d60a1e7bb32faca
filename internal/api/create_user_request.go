package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	FirstName string  `json:"firstName" form:"firstName" example:"Ana"`
	LastName  string  `json:"lastName" form:"lastName" example:"García"`
	Email     string  `json:"email" form:"email" validate:"required,email" example:"ana@example.com"`
	Password  string  `json:"password" form:"password" validate:"required" example:"Secret123!"`
	Expertise string  `json:"expertise" form:"expertise" example:"Backend"`
	Role      string  `json:"role" form:"role" validate:"omitempty,oneof=Administrador Gestor Usuario" example:"Usuario"`
	PhotoURL  *string `json:"photoUrl" form:"photoUrl" validate:"omitempty,url" example:"https://example.com/ana.png"`
}
