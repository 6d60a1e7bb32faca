package api

import "time"

// swagger:model api.CreateEventRequest
type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required" example:"Sprint review"`
	Description string     `json:"description" example:"Revisión del sprint 12"`
	Location    string     `json:"location" example:"Sala 3"`
	StartDate   time.Time  `json:"startDate" validate:"required" example:"2025-06-01T09:00:00Z"`
	EndDate     *time.Time `json:"endDate" example:"2025-06-01T10:00:00Z"`
}

// swagger:model api.UpdateEventRequest
type UpdateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1" example:"Sprint review"`
	Description *string    `json:"description" example:"Revisión del sprint 12"`
	Location    *string    `json:"location" example:"Sala 3"`
	StartDate   *time.Time `json:"startDate" example:"2025-06-01T09:00:00Z"`
	EndDate     *time.Time `json:"endDate" example:"2025-06-01T10:00:00Z"`

	// ClearEndDate 將 endDate 設回 null，不可與 endDate 同時使用
	ClearEndDate bool `json:"clearEndDate" example:"false"`
}

// swagger:model api.AddAttendeeRequest
type AddAttendeeRequest struct {
	UserID int    `json:"userId" validate:"required,gt=0" example:"2"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed declined" example:"confirmed"`
}
