package models

import "time"

// TeamMember represents a person on the team roster
type TeamMember struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	Photo     string    `json:"photo"` // URL or empty
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamMemberRequest represents a request to create or fully replace a team member
type TeamMemberRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio,omitempty"`
	Photo     string `json:"photo,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
}
