package booking

import (
	"bytes"
	"context"
	"fmt"

	"tourbook/internal/domain"

	"github.com/phpdave11/gofpdf"
)

// ConfirmationPDF renders the booking confirmation document returned by
// GET /bookings/:id/pdf. Returns content, filename, error.
func (s *Service) ConfirmationPDF(ctx context.Context, id int64) ([]byte, string, error) {
	b, err := s.get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	itemName := s.itemName(ctx, b)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID     : %s", b.BookingID),
		fmt.Sprintf("Booking Type   : %s", b.Type),
		fmt.Sprintf("Booked Item    : %s", safe(itemName)),
		fmt.Sprintf("Customer       : %s", b.CustomerName),
		fmt.Sprintf("Email          : %s", b.CustomerEmail),
		fmt.Sprintf("Phone          : %s", b.CustomerPhone),
	}
	lines = append(lines, detailLines(b)...)
	lines = append(lines,
		fmt.Sprintf("Total Price    : %.2f %s", b.TotalPrice, b.Currency),
		fmt.Sprintf("Status         : %s", b.Status),
		fmt.Sprintf("Payment        : %s", b.PaymentStatus),
		fmt.Sprintf("Created        : %s", b.CreatedAt.Format("2006-01-02 15:04")),
	)

	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	if b.SpecialRequests != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Special requests: "+b.SpecialRequests, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please keep this confirmation and present the booking ID on arrival.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("booking_%s.pdf", b.BookingID)
	return buf.Bytes(), filename, nil
}

func detailLines(b *domain.Booking) []string {
	switch b.Type {
	case domain.BookingTransport:
		return []string{
			fmt.Sprintf("Route          : %s -> %s", safe(b.PickupLocation), safe(b.DropoffLocation)),
			fmt.Sprintf("Date / Time    : %s %s", safe(b.BookingDate), safe(b.BookingTime)),
			fmt.Sprintf("Passengers     : %d", b.NumberOfPassengers),
		}
	case domain.BookingAccommodation:
		return []string{
			fmt.Sprintf("Check-in       : %s", safe(b.CheckInDate)),
			fmt.Sprintf("Check-out      : %s", safe(b.CheckOutDate)),
			fmt.Sprintf("Guests         : %d", b.Guests),
		}
	case domain.BookingActivity:
		return []string{
			fmt.Sprintf("Scheduled      : %s", safe(b.ScheduledDate)),
			fmt.Sprintf("Participants   : %d", b.Participants),
		}
	default:
		return []string{
			fmt.Sprintf("Visit Date     : %s", safe(b.VisitDate)),
			fmt.Sprintf("Group Size     : %d", b.GroupSize),
		}
	}
}

// itemName is best effort; a deleted catalog item leaves the booking intact,
// so the confirmation still renders with a placeholder.
func (s *Service) itemName(ctx context.Context, b *domain.Booking) string {
	switch b.Type {
	case domain.BookingTransport:
		if b.ProviderID != nil {
			if p, err := s.catalog.GetTransportProvider(ctx, *b.ProviderID); err == nil {
				return p.Name
			}
		}
	case domain.BookingAccommodation:
		if b.AccommodationID != nil {
			if a, err := s.catalog.GetAccommodation(ctx, *b.AccommodationID); err == nil {
				return a.Name
			}
		}
	case domain.BookingActivity:
		if b.ActivityID != nil {
			if a, err := s.catalog.GetActivity(ctx, *b.ActivityID); err == nil {
				return a.Name
			}
		}
	case domain.BookingLocation:
		if b.LocationID != nil {
			if l, err := s.catalog.GetLocation(ctx, *b.LocationID); err == nil {
				return l.Name
			}
		}
	}
	return ""
}

func safe(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
