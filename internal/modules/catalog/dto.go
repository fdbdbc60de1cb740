package catalog

type CreateTransportProviderRequest struct {
	Name         string   `json:"name" binding:"required,min=2"`
	VehicleType  string   `json:"vehicleType"`
	City         string   `json:"city"`
	ContactPhone string   `json:"contactPhone"`
	Price        float64  `json:"price" binding:"required,gte=0"`
	Currency     string   `json:"currency"`
	Seats        int      `json:"seats" binding:"required,gt=0"`
	Availability *bool    `json:"availability"`
	Images       []string `json:"images"`
}

type UpdateTransportProviderRequest struct {
	Name         *string  `json:"name"`
	VehicleType  *string  `json:"vehicleType"`
	City         *string  `json:"city"`
	ContactPhone *string  `json:"contactPhone"`
	Price        *float64 `json:"price"`
	Currency     *string  `json:"currency"`
	Seats        *int     `json:"seats"`
	Availability *bool    `json:"availability"`
	Images       *[]string `json:"images"`
}

type CreateAccommodationRequest struct {
	Name         string   `json:"name" binding:"required,min=2"`
	Category     string   `json:"category"`
	City         string   `json:"city"`
	Address      string   `json:"address"`
	Price        float64  `json:"price" binding:"required,gte=0"`
	Currency     string   `json:"currency"`
	Availability *bool    `json:"availability"`
	Images       []string `json:"images"`
}

type UpdateAccommodationRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	City         *string  `json:"city"`
	Address      *string  `json:"address"`
	Price        *float64 `json:"price"`
	Currency     *string  `json:"currency"`
	Availability *bool    `json:"availability"`
	Images       *[]string `json:"images"`
}

type CreateActivityRequest struct {
	Name         string   `json:"name" binding:"required,min=2"`
	Category     string   `json:"category"`
	City         string   `json:"city"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" binding:"required,gte=0"`
	Currency     string   `json:"currency"`
	Availability *bool    `json:"availability"`
	Images       []string `json:"images"`
}

type UpdateActivityRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	City         *string  `json:"city"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Currency     *string  `json:"currency"`
	Availability *bool    `json:"availability"`
	Images       *[]string `json:"images"`
}

type CreateLocationRequest struct {
	Name         string   `json:"name" binding:"required,min=2"`
	City         string   `json:"city"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" binding:"gte=0"`
	Currency     string   `json:"currency"`
	Availability *bool    `json:"availability"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
}

type UpdateLocationRequest struct {
	Name         *string  `json:"name"`
	City         *string  `json:"city"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Currency     *string  `json:"currency"`
	Availability *bool    `json:"availability"`
	Image        *string  `json:"image"`
	Images       *[]string `json:"images"`
}

type SetAvailabilityRequest struct {
	Availability *bool `json:"availability" binding:"required"`
}

type ListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}
