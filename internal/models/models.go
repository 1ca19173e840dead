package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID                     int64     `json:"id" db:"id"`
	Username               string    `json:"username" db:"username"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Group struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// Post хранит author_id для проверок владения, а Author (username)
// подставляется запросом с JOIN для ответа API.
type Post struct {
	ID       int64     `json:"id" db:"id"`
	AuthorID int64     `json:"-" db:"author_id"`
	Author   string    `json:"author" db:"author"`
	Text     string    `json:"text" db:"text"`
	PubDate  time.Time `json:"pub_date" db:"pub_date"`
	Image    *string   `json:"image" db:"image"`
	GroupID  *int64    `json:"group" db:"group_id"`
}

type Comment struct {
	ID       int64     `json:"id" db:"id"`
	AuthorID int64     `json:"-" db:"author_id"`
	Author   string    `json:"author" db:"author"`
	PostID   int64     `json:"post" db:"post_id"`
	Text     string    `json:"text" db:"text"`
	Created  time.Time `json:"created" db:"created"`
}

type Follow struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"-" db:"user_id"`
	User        string `json:"user" db:"user_name"`
	FollowingID int64  `json:"-" db:"following_id"`
	Following   string `json:"following" db:"following_name"`
}
