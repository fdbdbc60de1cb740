package admin

import (
	"context"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

type BookingReader interface {
	GetAll(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	CountByAdminStatus(ctx context.Context, status domain.AdminStatus) (int64, error)
	PaidRevenue(ctx context.Context) (float64, error)
}

type Service struct {
	bookings BookingReader
}

func NewService(bookings BookingReader) *Service {
	return &Service{bookings: bookings}
}

// ListBookings is the console view over all bookings, including the
// comprehensive-flow filter on the special-requests tag.
func (s *Service) ListBookings(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, int64, error) {
	return s.bookings.GetAll(ctx, f)
}

func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	_, total, err := s.bookings.GetAll(ctx, repository.BookingFilters{Limit: 1})
	if err != nil {
		return nil, err
	}

	stats := &StatisticsResponse{TotalBookings: total}

	if stats.PendingBookings, err = s.bookings.CountByStatus(ctx, domain.BookingPending); err != nil {
		return nil, err
	}
	if stats.ConfirmedBookings, err = s.bookings.CountByStatus(ctx, domain.BookingConfirmed); err != nil {
		return nil, err
	}
	if stats.CancelledBookings, err = s.bookings.CountByStatus(ctx, domain.BookingCancelled); err != nil {
		return nil, err
	}
	if stats.AwaitingApproval, err = s.bookings.CountByAdminStatus(ctx, domain.AdminPending); err != nil {
		return nil, err
	}
	if stats.ApprovedBookings, err = s.bookings.CountByAdminStatus(ctx, domain.AdminApproved); err != nil {
		return nil, err
	}
	if stats.RejectedBookings, err = s.bookings.CountByAdminStatus(ctx, domain.AdminRejected); err != nil {
		return nil, err
	}
	if stats.PaidRevenue, err = s.bookings.PaidRevenue(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
