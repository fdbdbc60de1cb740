package repository

import (
	"context"

	"tourbook/internal/domain"
)

// Catalog bundles the four catalog repositories behind one read surface for
// the booking engine.
type Catalog struct {
	providers      *TransportProviderRepository
	accommodations *AccommodationRepository
	activities     *ActivityRepository
	locations      *LocationRepository
}

func NewCatalog(
	providers *TransportProviderRepository,
	accommodations *AccommodationRepository,
	activities *ActivityRepository,
	locations *LocationRepository,
) *Catalog {
	return &Catalog{
		providers:      providers,
		accommodations: accommodations,
		activities:     activities,
		locations:      locations,
	}
}

func (c *Catalog) GetTransportProvider(ctx context.Context, id int64) (*domain.TransportProvider, error) {
	return c.providers.GetByID(ctx, id)
}

func (c *Catalog) GetAccommodation(ctx context.Context, id int64) (*domain.Accommodation, error) {
	return c.accommodations.GetByID(ctx, id)
}

func (c *Catalog) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	return c.activities.GetByID(ctx, id)
}

func (c *Catalog) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	return c.locations.GetByID(ctx, id)
}
