package admin

import "tourbook/internal/domain"

type BookingListResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int64            `json:"total"`
}

type StatisticsResponse struct {
	TotalBookings     int64   `json:"totalBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	CancelledBookings int64   `json:"cancelledBookings"`
	AwaitingApproval  int64   `json:"awaitingApproval"`
	ApprovedBookings  int64   `json:"approvedBookings"`
	RejectedBookings  int64   `json:"rejectedBookings"`
	PaidRevenue       float64 `json:"paidRevenue"`
}
