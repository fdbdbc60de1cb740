package domain

import "time"

type BookingType string

const (
	BookingTransport     BookingType = "transport"
	BookingAccommodation BookingType = "accommodation"
	BookingActivity      BookingType = "activity"
	BookingLocation      BookingType = "location"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type AdminStatus string

const (
	AdminPending  AdminStatus = "pending"
	AdminApproved AdminStatus = "approved"
	AdminRejected AdminStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// ComprehensiveTag marks bookings created through the combined flow; the
// admin console filters on this exact special_requests value.
const ComprehensiveTag = "Comprehensive booking"

type Booking struct {
	ID        int64       `json:"id"`
	BookingID string      `json:"bookingId" gorm:"uniqueIndex"`
	Type      BookingType `json:"type"`

	// Exactly one of the four references is set, matching Type.
	ProviderID      *int64 `json:"providerId,omitempty"`
	AccommodationID *int64 `json:"accommodationId,omitempty"`
	ActivityID      *int64 `json:"activityId,omitempty"`
	LocationID      *int64 `json:"locationId,omitempty"`

	// Creator account when the booking was made while signed in.
	UserID *int64 `json:"userId,omitempty"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	// Transport
	PickupLocation     string `json:"pickupLocation,omitempty"`
	DropoffLocation    string `json:"dropoffLocation,omitempty"`
	BookingDate        string `json:"bookingDate,omitempty"`
	BookingTime        string `json:"bookingTime,omitempty"`
	NumberOfPassengers int    `json:"numberOfPassengers,omitempty"`

	// Accommodation
	CheckInDate  string `json:"checkInDate,omitempty"`
	CheckOutDate string `json:"checkOutDate,omitempty"`
	Guests       int    `json:"guests,omitempty"`

	// Activity
	ScheduledDate string `json:"scheduledDate,omitempty"`
	Participants  int    `json:"participants,omitempty"`

	// Location
	VisitDate string `json:"visitDate,omitempty"`
	GroupSize int    `json:"groupSize,omitempty"`

	SpecialRequests string `json:"specialRequests,omitempty" gorm:"type:text"`

	TotalPrice float64 `json:"totalPrice"`
	Currency   string  `json:"currency"`

	Status        BookingStatus `json:"status"`
	AdminStatus   AdminStatus   `json:"adminStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	UserConfirmed bool          `json:"userConfirmed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Quantity returns the cardinality field the price formula multiplies by.
func (b *Booking) Quantity() int {
	switch b.Type {
	case BookingTransport:
		return b.NumberOfPassengers
	case BookingAccommodation:
		return b.Guests
	case BookingActivity:
		return b.Participants
	default:
		return b.GroupSize
	}
}
