package catalog

import (
	"context"
	"testing"

	"tourbook/internal/database"
	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalog(t *testing.T) (*Service, *gorm.DB) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	models := []interface{}{
		&domain.TransportProvider{},
		&domain.Accommodation{},
		&domain.Activity{},
		&domain.Location{},
	}
	for _, model := range models {
		require.NoError(t, db.AutoMigrate(model))
	}

	service := NewService(
		repository.NewTransportProviderRepository(db),
		repository.NewAccommodationRepository(db),
		repository.NewActivityRepository(db),
		repository.NewLocationRepository(db),
	)
	return service, db
}

func TestCatalog_TransportProviderCRUD(t *testing.T) {
	service, _ := setupCatalog(t)
	ctx := context.Background()

	p, err := service.CreateTransportProvider(ctx, CreateTransportProviderRequest{
		Name:        "City Shuttle",
		VehicleType: "minibus",
		City:        "Astana",
		Price:       50,
		Currency:    "USD",
		Seats:       4,
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.True(t, p.Availability) // defaults to available

	got, err := service.GetTransportProvider(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "City Shuttle", got.Name)

	newName := "Metro Shuttle"
	newPrice := 60.0
	updated, err := service.UpdateTransportProvider(ctx, p.ID, UpdateTransportProviderRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Metro Shuttle", updated.Name)
	assert.Equal(t, 60.0, updated.Price)
	assert.Equal(t, 4, updated.Seats) // untouched fields survive

	items, total, err := service.ListTransportProviders(ctx, repository.CatalogFilters{City: "Astana", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)

	require.NoError(t, service.DeleteTransportProvider(ctx, p.ID))
	_, err = service.GetTransportProvider(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_AvailabilityToggle(t *testing.T) {
	service, _ := setupCatalog(t)
	ctx := context.Background()

	a, err := service.CreateAccommodation(ctx, CreateAccommodationRequest{
		Name:  "Grand Hotel",
		City:  "Almaty",
		Price: 120,
	})
	require.NoError(t, err)
	require.True(t, a.Availability)

	off, err := service.SetAccommodationAvailability(ctx, a.ID, false)
	require.NoError(t, err)
	assert.False(t, off.Availability)

	// unavailable items are filtered out of available-only listings
	_, total, err := service.ListAccommodations(ctx, repository.CatalogFilters{AvailableOnly: true, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	on, err := service.SetAccommodationAvailability(ctx, a.ID, true)
	require.NoError(t, err)
	assert.True(t, on.Availability)
}

func TestCatalog_ImageCap(t *testing.T) {
	service, _ := setupCatalog(t)
	ctx := context.Background()

	act, err := service.CreateActivity(ctx, CreateActivityRequest{
		Name:   "Canyon Hike",
		Price:  30,
		Images: []string{"/static/activities/a.jpg", "/static/activities/b.jpg", "/static/activities/c.jpg"},
	})
	require.NoError(t, err)

	withMore, err := service.AddActivityImages(ctx, act.ID, []string{"/static/activities/d.jpg", "/static/activities/e.jpg"})
	require.NoError(t, err)
	assert.Len(t, withMore.Images, 5)

	_, err = service.AddActivityImages(ctx, act.ID, []string{"/static/activities/f.jpg"})
	assert.ErrorIs(t, err, ErrTooManyFiles)
}

func TestCatalog_NotFound(t *testing.T) {
	service, _ := setupCatalog(t)
	ctx := context.Background()

	_, err := service.GetLocation(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	err = service.DeleteActivity(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	name := "x"
	_, err = service.UpdateAccommodation(ctx, 9999, UpdateAccommodationRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

// Deleting a catalog item must not touch bookings that reference it.
func TestCatalog_DeleteLeavesBookingsIntact(t *testing.T) {
	service, db := setupCatalog(t)
	ctx := context.Background()

	require.NoError(t, db.AutoMigrate(&domain.Booking{}))
	bookingRepo := repository.NewBookingRepository(db)

	p, err := service.CreateTransportProvider(ctx, CreateTransportProviderRequest{
		Name:  "City Shuttle",
		Price: 50,
		Seats: 4,
	})
	require.NoError(t, err)

	providerID := p.ID
	b := &domain.Booking{
		BookingID:          "BK-20260830-TEST01",
		Type:               domain.BookingTransport,
		ProviderID:         &providerID,
		CustomerName:       "Jane Traveler",
		CustomerEmail:      "jane@example.com",
		CustomerPhone:      "5551234567",
		BookingDate:        "2026-09-15",
		BookingTime:        "14:30",
		NumberOfPassengers: 2,
		TotalPrice:         100,
		Currency:           "USD",
		Status:             domain.BookingPending,
		AdminStatus:        domain.AdminPending,
		PaymentStatus:      domain.PaymentPending,
	}
	require.NoError(t, bookingRepo.Create(ctx, b))

	require.NoError(t, service.DeleteTransportProvider(ctx, providerID))

	kept, err := bookingRepo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.ProviderID)
	assert.Equal(t, providerID, *kept.ProviderID)
	assert.Equal(t, 100.0, kept.TotalPrice)
}
