package entity

import "time"

// Post is a short text update with an optional image.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostView is a post as rendered in a feed: author attached, plus the like
// state of the viewer the feed was built for.
type PostView struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	User      Author    `json:"user"`
	Liked     bool      `json:"liked"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
