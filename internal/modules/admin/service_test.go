package admin

import (
	"context"
	"testing"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetAll(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingReader) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingReader) CountByAdminStatus(ctx context.Context, status domain.AdminStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingReader) PaidRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func TestService_GetStatistics(t *testing.T) {
	bookings := new(MockBookingReader)

	bookings.On("GetAll", mock.Anything, repository.BookingFilters{Limit: 1}).
		Return([]domain.Booking{{ID: 1}}, int64(12), nil)
	bookings.On("CountByStatus", mock.Anything, domain.BookingPending).Return(int64(5), nil)
	bookings.On("CountByStatus", mock.Anything, domain.BookingConfirmed).Return(int64(4), nil)
	bookings.On("CountByStatus", mock.Anything, domain.BookingCancelled).Return(int64(3), nil)
	bookings.On("CountByAdminStatus", mock.Anything, domain.AdminPending).Return(int64(6), nil)
	bookings.On("CountByAdminStatus", mock.Anything, domain.AdminApproved).Return(int64(4), nil)
	bookings.On("CountByAdminStatus", mock.Anything, domain.AdminRejected).Return(int64(2), nil)
	bookings.On("PaidRevenue", mock.Anything).Return(420.5, nil)

	service := NewService(bookings)

	stats, err := service.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.TotalBookings)
	assert.Equal(t, int64(5), stats.PendingBookings)
	assert.Equal(t, int64(4), stats.ConfirmedBookings)
	assert.Equal(t, int64(3), stats.CancelledBookings)
	assert.Equal(t, int64(6), stats.AwaitingApproval)
	assert.Equal(t, int64(4), stats.ApprovedBookings)
	assert.Equal(t, int64(2), stats.RejectedBookings)
	assert.Equal(t, 420.5, stats.PaidRevenue)
}

func TestService_ListBookings_PassesFilters(t *testing.T) {
	bookings := new(MockBookingReader)

	want := repository.BookingFilters{
		AdminStatus: "pending",
		Tag:         domain.ComprehensiveTag,
		Limit:       20,
	}
	bookings.On("GetAll", mock.Anything, want).
		Return([]domain.Booking{{ID: 1}, {ID: 2}}, int64(2), nil)

	service := NewService(bookings)

	got, total, err := service.ListBookings(context.Background(), want)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), total)
	bookings.AssertExpectations(t)
}
