package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey"           json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"not null"             json:"username"`
	PasswordHash string    `gorm:"not null"             json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Style struct {
	FontSize        int     `json:"fontSize"`
	FontColor       string  `json:"fontColor"`
	BackgroundColor string  `json:"backgroundColor"`
	Opacity         float64 `json:"opacity"`
	FontFamily      string  `json:"fontFamily"`
	FontWeight      string  `json:"fontWeight"`
}

type Overlay struct {
	ID        string    `gorm:"primaryKey"     json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Type      string    `gorm:"not null"       json:"type"`
	Content   string    `gorm:"not null"       json:"content"`
	Position  Position  `gorm:"embedded;embeddedPrefix:position_" json:"position"`
	Size      Size      `gorm:"embedded;embeddedPrefix:size_"     json:"size"`
	Style     Style     `gorm:"embedded;embeddedPrefix:style_"    json:"style"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StreamSettings struct {
	UserID     string `gorm:"primaryKey" json:"user_id"`
	StreamURL  string `gorm:"not null"   json:"stream_url"`
	StreamType string `gorm:"not null"   json:"stream_type"`
}
