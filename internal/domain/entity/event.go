package entity

import "time"

// Event is a scheduled meetup belonging to a group (table "events").
type Event struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"group_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	EventDate    time.Time `json:"event_date"`
	Location     string    `json:"location"`
	Address      *string   `json:"address"`
	MaxAttendees *int      `json:"max_attendees"`
	ImageURL     *string   `json:"image_url"`
	CreatedBy    *string   `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EventInsert struct {
	GroupID      string    `json:"group_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	EventDate    time.Time `json:"event_date"`
	Location     string    `json:"location"`
	Address      *string   `json:"address,omitempty"`
	MaxAttendees *int      `json:"max_attendees,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedBy    *string   `json:"created_by,omitempty"`
}
