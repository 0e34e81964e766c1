package entity

import "time"

// User is the identity record. Password holds the bcrypt hash and never
// leaves the server; handlers return one of the view types below instead.
type User struct {
	ID        int64
	Email     string
	Password  string
	Username  string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the subset of a User safe to return to its owner.
type PublicUser struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image"`
}

func (u *User) Public() PublicUser {
	return PublicUser{UserID: u.ID, Username: u.Username, Email: u.Email, Image: u.Image}
}

// Author is what other users get to see: no email.
type Author struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

func (u *User) AsAuthor() Author {
	return Author{UserID: u.ID, Username: u.Username, Image: u.Image}
}
