package core

import "time"

type Credentials struct {
	Username string
	Password string
}

// PublicUser is the part of a user that is safe to hand to clients.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type Profile struct {
	ID             uint    `json:"id"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profile_picture"`
}

type Session struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

type Picture struct {
	ContentType string
	Data        []byte
}

// AccountUpdate carries the optional account changes; empty strings are
// treated as not supplied.
type AccountUpdate struct {
	Username        string
	Password        string
	CurrentPassword string
}

type Note struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteDraft struct {
	Title   string
	Content string
}
