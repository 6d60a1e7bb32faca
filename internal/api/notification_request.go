package api

// swagger:model api.CreateNotificationRequest
type CreateNotificationRequest struct {
	UserID  int    `json:"userId" validate:"required,gt=0" example:"1"`
	Title   string `json:"title" validate:"required" example:"Nueva tarea"`
	Message string `json:"message" example:"Se te asignó una tarea"`
}

// UpdateNotificationRequest 一律將通知標為已讀；isRead 只能是 true
// swagger:model api.UpdateNotificationRequest
type UpdateNotificationRequest struct {
	Title   *string `json:"title" example:"Nueva tarea"`
	Message *string `json:"message" example:"Se te asignó una tarea"`
	IsRead  *bool   `json:"isRead" example:"true"`
}
