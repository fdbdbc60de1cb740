package booking

import (
	"regexp"
	"strings"
	"time"

	"tourbook/internal/domain"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxGroupSize = 50

// now is swapped in tests to pin "today".
var now = time.Now

// validateBooking applies the unified rule set keyed by booking type.
// The phone rule is deliberately uneven: location bookings require exactly
// ten digits while the other types accept any non-empty string. That drift
// comes from the product forms and is kept until product decides otherwise.
func validateBooking(b *domain.Booking) FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(b.CustomerName)) < 2 {
		errs["customerName"] = "name must be at least 2 characters"
	}
	if !emailRx.MatchString(b.CustomerEmail) {
		errs["customerEmail"] = "invalid email address"
	}

	if b.Type == domain.BookingLocation {
		if !isTenDigits(b.CustomerPhone) {
			errs["customerPhone"] = "phone must be exactly 10 digits"
		}
	} else if strings.TrimSpace(b.CustomerPhone) == "" {
		errs["customerPhone"] = "phone is required"
	}

	switch b.Type {
	case domain.BookingTransport:
		if past(b.BookingDate) {
			errs["bookingDate"] = "date cannot be in the past"
		}
		if b.NumberOfPassengers < 1 {
			errs["numberOfPassengers"] = "at least 1 passenger required"
		}
	case domain.BookingAccommodation:
		if past(b.CheckInDate) {
			errs["checkInDate"] = "date cannot be in the past"
		}
		if b.CheckOutDate != "" && b.CheckInDate != "" && b.CheckOutDate <= b.CheckInDate {
			errs["checkOutDate"] = "check-out must be after check-in"
		}
		if b.Guests < 1 {
			errs["guests"] = "at least 1 guest required"
		}
	case domain.BookingActivity:
		if past(b.ScheduledDate) {
			errs["scheduledDate"] = "date cannot be in the past"
		}
		if b.Participants < 1 {
			errs["participants"] = "at least 1 participant required"
		}
	case domain.BookingLocation:
		if past(b.VisitDate) {
			errs["visitDate"] = "date cannot be in the past"
		}
		if b.GroupSize < 1 {
			errs["groupSize"] = "at least 1 person required"
		}
		if b.GroupSize > maxGroupSize {
			errs["groupSize"] = "group size cannot exceed 50"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// past reports whether the YYYY-MM-DD date is strictly before today.
// Unparseable dates count as invalid too.
func past(date string) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return true
	}
	t := now()
	today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}
