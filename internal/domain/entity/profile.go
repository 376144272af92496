package entity

import "time"

// Profile is a family's public profile row (table "profiles"). The id is the
// auth user id issued by the hosted auth service.
type Profile struct {
	ID                      string     `json:"id"`
	FamilyName              string     `json:"family_name"`
	Email                   string     `json:"email"`
	Bio                     *string    `json:"bio"`
	Interests               []string   `json:"interests"`
	Neighborhood            *string    `json:"neighborhood"`
	City                    string     `json:"city"`
	AvatarURL               *string    `json:"avatar_url"`
	IsVerified              bool       `json:"is_verified"`
	VerificationRequestedAt *time.Time `json:"verification_requested_at"`
	VerifiedAt              *time.Time `json:"verified_at"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// ProfileInsert is the payload for creating a profile. Nil fields are not sent
// so the store applies its column defaults.
type ProfileInsert struct {
	ID           string   `json:"id"`
	FamilyName   string   `json:"family_name"`
	Email        string   `json:"email"`
	Bio          *string  `json:"bio,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Neighborhood *string  `json:"neighborhood,omitempty"`
	City         *string  `json:"city,omitempty"`
	AvatarURL    *string  `json:"avatar_url,omitempty"`
}

// ProfileUpdate carries only the columns being changed.
type ProfileUpdate struct {
	FamilyName   *string  `json:"family_name,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Neighborhood *string  `json:"neighborhood,omitempty"`
	AvatarURL    *string  `json:"avatar_url,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u ProfileUpdate) Empty() bool {
	return u.FamilyName == nil && u.Bio == nil && u.Interests == nil && u.Neighborhood == nil && u.AvatarURL == nil
}
