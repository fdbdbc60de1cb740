package catalog

import (
	"context"
	"errors"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"gorm.io/gorm"
)

const maxImagesPerItem = 5

type Service struct {
	providers      *repository.TransportProviderRepository
	accommodations *repository.AccommodationRepository
	activities     *repository.ActivityRepository
	locations      *repository.LocationRepository
}

func NewService(
	providers *repository.TransportProviderRepository,
	accommodations *repository.AccommodationRepository,
	activities *repository.ActivityRepository,
	locations *repository.LocationRepository,
) *Service {
	return &Service{providers, accommodations, activities, locations}
}

func defaultAvailability(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

/* ---------- TRANSPORT PROVIDERS ---------- */

func (s *Service) ListTransportProviders(ctx context.Context, f repository.CatalogFilters) ([]domain.TransportProvider, int64, error) {
	return s.providers.GetAll(ctx, f)
}

func (s *Service) GetTransportProvider(ctx context.Context, id int64) (*domain.TransportProvider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) CreateTransportProvider(ctx context.Context, req CreateTransportProviderRequest) (*domain.TransportProvider, error) {
	p := &domain.TransportProvider{
		Name:         req.Name,
		VehicleType:  req.VehicleType,
		City:         req.City,
		ContactPhone: req.ContactPhone,
		Price:        req.Price,
		Currency:     req.Currency,
		Seats:        req.Seats,
		Availability: defaultAvailability(req.Availability),
		Images:       req.Images,
	}
	if err := s.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateTransportProvider(ctx context.Context, id int64, req UpdateTransportProviderRequest) (*domain.TransportProvider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.VehicleType != nil {
		p.VehicleType = *req.VehicleType
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.ContactPhone != nil {
		p.ContactPhone = *req.ContactPhone
	}
	if req.Price != nil && *req.Price >= 0 {
		p.Price = *req.Price
	}
	if req.Currency != nil {
		p.Currency = *req.Currency
	}
	if req.Seats != nil && *req.Seats > 0 {
		p.Seats = *req.Seats
	}
	if req.Availability != nil {
		p.Availability = *req.Availability
	}
	if req.Images != nil {
		p.Images = *req.Images
	}

	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteTransportProvider removes the row physically. Bookings that reference
// it keep their provider id; lookups against it start returning not found.
func (s *Service) DeleteTransportProvider(ctx context.Context, id int64) error {
	if _, err := s.providers.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.providers.Delete(ctx, id)
}

func (s *Service) SetTransportProviderAvailability(ctx context.Context, id int64, available bool) (*domain.TransportProvider, error) {
	if _, err := s.providers.GetByID(ctx, id); err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.providers.SetAvailability(ctx, id, available); err != nil {
		return nil, err
	}
	return s.providers.GetByID(ctx, id)
}

func (s *Service) AddTransportProviderImages(ctx context.Context, id int64, urls []string) (*domain.TransportProvider, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	merged, err := mergeImages(p.Images, urls)
	if err != nil {
		return nil, err
	}
	p.Images = merged
	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

/* ---------- ACCOMMODATIONS ---------- */

func (s *Service) ListAccommodations(ctx context.Context, f repository.CatalogFilters) ([]domain.Accommodation, int64, error) {
	return s.accommodations.GetAll(ctx, f)
}

func (s *Service) GetAccommodation(ctx context.Context, id int64) (*domain.Accommodation, error) {
	a, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

func (s *Service) CreateAccommodation(ctx context.Context, req CreateAccommodationRequest) (*domain.Accommodation, error) {
	a := &domain.Accommodation{
		Name:         req.Name,
		Category:     req.Category,
		City:         req.City,
		Address:      req.Address,
		Price:        req.Price,
		Currency:     req.Currency,
		Availability: defaultAvailability(req.Availability),
		Images:       req.Images,
	}
	if err := s.accommodations.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) UpdateAccommodation(ctx context.Context, id int64, req UpdateAccommodationRequest) (*domain.Accommodation, error) {
	a, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.City != nil {
		a.City = *req.City
	}
	if req.Address != nil {
		a.Address = *req.Address
	}
	if req.Price != nil && *req.Price >= 0 {
		a.Price = *req.Price
	}
	if req.Currency != nil {
		a.Currency = *req.Currency
	}
	if req.Availability != nil {
		a.Availability = *req.Availability
	}
	if req.Images != nil {
		a.Images = *req.Images
	}

	if err := s.accommodations.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) DeleteAccommodation(ctx context.Context, id int64) error {
	if _, err := s.accommodations.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.accommodations.Delete(ctx, id)
}

func (s *Service) SetAccommodationAvailability(ctx context.Context, id int64, available bool) (*domain.Accommodation, error) {
	if _, err := s.accommodations.GetByID(ctx, id); err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.accommodations.SetAvailability(ctx, id, available); err != nil {
		return nil, err
	}
	return s.accommodations.GetByID(ctx, id)
}

func (s *Service) AddAccommodationImages(ctx context.Context, id int64, urls []string) (*domain.Accommodation, error) {
	a, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	merged, err := mergeImages(a.Images, urls)
	if err != nil {
		return nil, err
	}
	a.Images = merged
	if err := s.accommodations.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

/* ---------- ACTIVITIES ---------- */

func (s *Service) ListActivities(ctx context.Context, f repository.CatalogFilters) ([]domain.Activity, int64, error) {
	return s.activities.GetAll(ctx, f)
}

func (s *Service) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

func (s *Service) CreateActivity(ctx context.Context, req CreateActivityRequest) (*domain.Activity, error) {
	a := &domain.Activity{
		Name:         req.Name,
		Category:     req.Category,
		City:         req.City,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     req.Currency,
		Availability: defaultAvailability(req.Availability),
		Images:       req.Images,
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) UpdateActivity(ctx context.Context, id int64, req UpdateActivityRequest) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.City != nil {
		a.City = *req.City
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Price != nil && *req.Price >= 0 {
		a.Price = *req.Price
	}
	if req.Currency != nil {
		a.Currency = *req.Currency
	}
	if req.Availability != nil {
		a.Availability = *req.Availability
	}
	if req.Images != nil {
		a.Images = *req.Images
	}

	if err := s.activities.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) DeleteActivity(ctx context.Context, id int64) error {
	if _, err := s.activities.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.activities.Delete(ctx, id)
}

func (s *Service) SetActivityAvailability(ctx context.Context, id int64, available bool) (*domain.Activity, error) {
	if _, err := s.activities.GetByID(ctx, id); err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.activities.SetAvailability(ctx, id, available); err != nil {
		return nil, err
	}
	return s.activities.GetByID(ctx, id)
}

func (s *Service) AddActivityImages(ctx context.Context, id int64, urls []string) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	merged, err := mergeImages(a.Images, urls)
	if err != nil {
		return nil, err
	}
	a.Images = merged
	if err := s.activities.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

/* ---------- LOCATIONS ---------- */

func (s *Service) ListLocations(ctx context.Context, f repository.CatalogFilters) ([]domain.Location, int64, error) {
	return s.locations.GetAll(ctx, f)
}

func (s *Service) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	l, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return l, nil
}

func (s *Service) CreateLocation(ctx context.Context, req CreateLocationRequest) (*domain.Location, error) {
	l := &domain.Location{
		Name:         req.Name,
		City:         req.City,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     req.Currency,
		Availability: defaultAvailability(req.Availability),
		Image:        req.Image,
		Images:       req.Images,
	}
	if err := s.locations.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) UpdateLocation(ctx context.Context, id int64, req UpdateLocationRequest) (*domain.Location, error) {
	l, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.City != nil {
		l.City = *req.City
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Price != nil && *req.Price >= 0 {
		l.Price = *req.Price
	}
	if req.Currency != nil {
		l.Currency = *req.Currency
	}
	if req.Availability != nil {
		l.Availability = *req.Availability
	}
	if req.Image != nil {
		l.Image = *req.Image
	}
	if req.Images != nil {
		l.Images = *req.Images
	}

	if err := s.locations.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) DeleteLocation(ctx context.Context, id int64) error {
	if _, err := s.locations.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.locations.Delete(ctx, id)
}

func (s *Service) SetLocationAvailability(ctx context.Context, id int64, available bool) (*domain.Location, error) {
	if _, err := s.locations.GetByID(ctx, id); err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.locations.SetAvailability(ctx, id, available); err != nil {
		return nil, err
	}
	return s.locations.GetByID(ctx, id)
}

func (s *Service) AddLocationImages(ctx context.Context, id int64, urls []string) (*domain.Location, error) {
	l, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	merged, err := mergeImages(l.Images, urls)
	if err != nil {
		return nil, err
	}
	l.Images = merged
	if err := s.locations.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func mergeImages(existing, incoming []string) ([]string, error) {
	if len(existing)+len(incoming) > maxImagesPerItem {
		return nil, ErrTooManyFiles
	}
	return append(existing, incoming...), nil
}
