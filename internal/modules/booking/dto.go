package booking

type CreateTransportBookingRequest struct {
	ProviderID         int64  `json:"providerId" binding:"required"`
	CustomerName       string `json:"customerName" binding:"required"`
	CustomerEmail      string `json:"customerEmail" binding:"required"`
	CustomerPhone      string `json:"customerPhone" binding:"required"`
	PickupLocation     string `json:"pickupLocation" binding:"required"`
	DropoffLocation    string `json:"dropoffLocation" binding:"required"`
	BookingDate        string `json:"bookingDate" binding:"required"`
	BookingTime        string `json:"bookingTime" binding:"required"`
	NumberOfPassengers int    `json:"numberOfPassengers" binding:"required"`
	SpecialRequests    string `json:"specialRequests"`
}

type CreateAccommodationBookingRequest struct {
	AccommodationID int64  `json:"accommodationId" binding:"required"`
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

type CreateActivityBookingRequest struct {
	ActivityID      int64  `json:"activityId" binding:"required"`
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	ScheduledDate   string `json:"scheduledDate" binding:"required"`
	Participants    int    `json:"participants" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

type CreateLocationBookingRequest struct {
	LocationID      int64  `json:"locationId" binding:"required"`
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	VisitDate       string `json:"visitDate" binding:"required"`
	GroupSize       int    `json:"groupSize" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TotalByUserResponse struct {
	UserID       int64   `json:"userId"`
	BookingCount int64   `json:"bookingCount"`
	TotalSpent   float64 `json:"totalSpent"`
}
