package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:254" json:"email"`
	FirstName    string `gorm:"size:150" json:"first_name"`
	LastName     string `gorm:"size:150" json:"last_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:10;default:'staff'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
