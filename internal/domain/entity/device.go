package entity

import "time"

// Device is a gaming device listed on a user's profile.
type Device struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment,omitempty"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
