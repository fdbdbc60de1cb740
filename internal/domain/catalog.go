package domain

import "time"

// DefaultCurrency is applied when a catalog item carries no currency of its own.
const DefaultCurrency = "USD"

type TransportProvider struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,min=2"`
	VehicleType  string    `json:"vehicleType"`
	City         string    `json:"city"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	Price        float64   `json:"price" validate:"required,gte=0"`
	Currency     string    `json:"currency"`
	Seats        int       `json:"seats" validate:"required,gt=0"`
	Availability bool      `json:"availability"`
	Images       []string  `json:"images,omitempty" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Accommodation struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,min=2"`
	Category     string    `json:"category"`
	City         string    `json:"city"`
	Address      string    `json:"address,omitempty"`
	Price        float64   `json:"price" validate:"required,gte=0"`
	Currency     string    `json:"currency"`
	Availability bool      `json:"availability"`
	Images       []string  `json:"images,omitempty" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Activity struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,min=2"`
	Category     string    `json:"category"`
	City         string    `json:"city"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	Price        float64   `json:"price" validate:"required,gte=0"`
	Currency     string    `json:"currency"`
	Availability bool      `json:"availability"`
	Images       []string  `json:"images,omitempty" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Location struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,min=2"`
	City         string    `json:"city"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	Price        float64   `json:"price" validate:"gte=0"`
	Currency     string    `json:"currency"`
	Availability bool      `json:"availability"`
	Image        string    `json:"image,omitempty"`
	Images       []string  `json:"images,omitempty" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
