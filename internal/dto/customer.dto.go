package dto

import "time"

type Customer struct {
	ID          uint       `json:"id" validate:"required"`
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name"`
	PhoneNumber string     `json:"phone_number"`
	Email       string     `json:"email"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CustomerInput is the create/replace body for customers/.
type CustomerInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}
