package entity

import "time"

// Group is a neighbourhood family group (table "groups").
type Group struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Locality    string    `json:"locality"`
	Tags        []string  `json:"tags"`
	Rules       *string   `json:"rules"`
	ImageURL    *string   `json:"image_url"`
	IsVerified  bool      `json:"is_verified"`
	MemberCount int       `json:"member_count"`
	CreatedBy   *string   `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GroupInsert struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Locality    string   `json:"locality"`
	Tags        []string `json:"tags,omitempty"`
	Rules       *string  `json:"rules,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	CreatedBy   *string  `json:"created_by,omitempty"`
}

// GroupFilter narrows group listings. Zero values mean no filter.
type GroupFilter struct {
	Locality string
	Tag      string
	Limit    int
}
