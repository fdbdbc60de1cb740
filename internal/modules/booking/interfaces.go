package booking

import (
	"context"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

// BookingRepository defines the persistence operations the engine needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, ref string) (*domain.Booking, error)
	GetAll(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdateAdminStatus(ctx context.Context, id int64, status domain.AdminStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	Confirm(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	TotalByUser(ctx context.Context, userID int64) (float64, int64, error)
}

// CatalogReader resolves the catalog item a booking references.
type CatalogReader interface {
	GetTransportProvider(ctx context.Context, id int64) (*domain.TransportProvider, error)
	GetAccommodation(ctx context.Context, id int64) (*domain.Accommodation, error)
	GetActivity(ctx context.Context, id int64) (*domain.Activity, error)
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
}
