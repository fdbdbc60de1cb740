package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

type Preferences struct {
	Language   string `json:"language,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Newsletter bool   `json:"newsletter,omitempty"`
}

type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username" validate:"required,min=3"`
	Email        string       `json:"email" validate:"required,email"`
	PasswordHash string       `json:"-"`
	FirstName    string       `json:"firstName,omitempty"`
	LastName     string       `json:"lastName,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Role         UserRole     `json:"role"`
	IsActive     bool         `json:"isActive"`
	Address      *Address     `json:"address,omitempty" gorm:"serializer:json"`
	Preferences  *Preferences `json:"preferences,omitempty" gorm:"serializer:json"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
