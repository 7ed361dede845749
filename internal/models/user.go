package models

import "time"

type User struct {
	Username  string    `json:"username" gorm:"primaryKey"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
}
