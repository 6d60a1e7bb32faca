// File: internal/model/event.go
package model

import "time"

type Event struct {
	ID          int        `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Location    string     `db:"location" json:"location"`
	StartDate   time.Time  `db:"start_date" json:"startDate"`
	EndDate     *time.Time `db:"end_date" json:"endDate,omitempty"`
	CreatedBy   *int       `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
	// Attendees 僅在單筆查詢時填入
	Attendees []Attendee `db:"-" json:"attendees,omitempty"`
}

type EventPatch struct {
	Title       *string
	Description *string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time

	// ClearEndDate 為 true 時 end_date 設為 NULL，優先於 EndDate
	ClearEndDate bool
}

type AttendeeStatus string

const (
	AttendeePending   AttendeeStatus = "pending"
	AttendeeConfirmed AttendeeStatus = "confirmed"
	AttendeeDeclined  AttendeeStatus = "declined"
)

type Attendee struct {
	UserID    int            `db:"user_id" json:"userId"`
	FirstName string         `db:"first_name" json:"firstName"`
	LastName  string         `db:"last_name" json:"lastName"`
	Email     string         `db:"email" json:"email"`
	Status    AttendeeStatus `db:"status" json:"status"`
	JoinedAt  time.Time      `db:"created_at" json:"joinedAt"`
}
