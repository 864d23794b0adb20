package models

import "time"

type Customer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FirstName   string `gorm:"size:50;not null" json:"first_name"`
	LastName    string `gorm:"size:50;not null" json:"last_name"`
	PhoneNumber string `gorm:"size:15;not null" json:"phone_number"`
	Email       string `gorm:"size:254;uniqueIndex;not null" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
